package static

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

var fixedNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func records(n int, prefix string) []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.ServiceRecord{
			domain.FieldName:    fmt.Sprintf("%s %d", prefix, i),
			domain.FieldOrgName: "여주시",
			domain.FieldTarget:  "대상",
			domain.FieldContent: "내용",
		})
	}
	return out
}

func testDigest() domain.Digest {
	return domain.Digest{
		GeneratedAt: fixedNow,
		Sections: []domain.Section{
			{Category: domain.Category{ID: "youth", Name: "청년", Icon: "🎓", Color: "#60a5fa"}, Items: records(12, "청년 지원")},
			{Category: domain.Category{ID: "senior", Name: "노인", Icon: "👴", Color: "#c084fc"}},
			{Category: domain.Category{ID: "other", Name: "기타", Icon: "📋", Color: "#94a3b8"}, Items: records(2, "기타 지원")},
		},
	}
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func TestRenderSkipsEmptySectionsAndCapsCards(t *testing.T) {
	out, err := New().Render(testDigest())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Variant != Variant {
		t.Fatalf("unexpected variant %q", out.Variant)
	}

	doc := parse(t, out.HTML)
	sections := doc.Find(".yjsub-cat")
	if sections.Length() != 2 {
		t.Fatalf("expected 2 non-empty sections, got %d", sections.Length())
	}

	first := sections.First()
	if cards := first.Find(".yjsub-card").Length(); cards != ItemCap {
		t.Fatalf("expected %d cards, got %d", ItemCap, cards)
	}
	if cnt := first.Find(".cnt").Text(); cnt != "(12건)" {
		t.Fatalf("expected uncapped count label, got %q", cnt)
	}
	if name := sections.Eq(1).Find(".yjsub-cat-title span").Eq(1).Text(); name != "기타" {
		t.Fatalf("expected display order kept, second section %q", name)
	}
	if total := doc.Find(".yjsub-stat .num").Text(); total != "14건" {
		t.Fatalf("unexpected header total %q", total)
	}
	if !strings.Contains(doc.Find(".yjsub-footer").Text(), "2026-10-17 09:30") {
		t.Fatalf("footer should carry update time")
	}
}

func TestRenderCardFields(t *testing.T) {
	longContent := strings.Repeat("가", 150)
	longTarget := strings.Repeat("나", 80)
	digest := domain.Digest{
		GeneratedAt: fixedNow,
		Sections: []domain.Section{{
			Category: domain.Category{ID: "youth", Name: "청년"},
			Items: []domain.ServiceRecord{
				{domain.FieldName: "with summary", domain.FieldSummary: "요약", domain.FieldContent: longContent, domain.FieldDetailURL: "https://www.gov.kr/x"},
				{domain.FieldName: "no summary", domain.FieldContent: longContent, domain.FieldTarget: longTarget},
			},
		}},
	}

	out, err := New().Render(digest)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	cards := parse(t, out.HTML).Find(".yjsub-card")

	first := cards.Eq(0)
	if first.Find(".yjsub-card-desc").Text() != "요약" {
		t.Fatalf("summary should be preferred")
	}
	if href, _ := first.Find("a.yjsub-card-link").Attr("href"); href != "https://www.gov.kr/x" {
		t.Fatalf("expected details link, got %q", href)
	}

	second := cards.Eq(1)
	if second.Find("a.yjsub-card-link").Length() != 0 {
		t.Fatalf("link must be omitted without url")
	}
	if n := utf8.RuneCountInString(second.Find(".yjsub-card-desc").Text()); n != descLimit {
		t.Fatalf("expected description cut to %d runes, got %d", descLimit, n)
	}
	target := strings.TrimPrefix(second.Find(".yjsub-card-meta span").Text(), "👤 ")
	if n := utf8.RuneCountInString(target); n != targetLimit {
		t.Fatalf("expected target cut to %d runes, got %d", targetLimit, n)
	}
	if second.Find(".yjsub-card-name").Text() != "no summary" {
		t.Fatalf("card without url must still render")
	}
}

func TestRenderEscapesRecordText(t *testing.T) {
	digest := domain.Digest{
		GeneratedAt: fixedNow,
		Sections: []domain.Section{{
			Category: domain.Category{ID: "youth", Name: "청년"},
			Items:    []domain.ServiceRecord{{domain.FieldName: `<script>alert(1)</script>`}},
		}},
	}
	out, err := New().Render(digest)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out.HTML, "<script>alert(1)</script>") {
		t.Fatalf("record text must be escaped")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := New()
	a, err := r.Render(testDigest())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, _ := r.Render(testDigest())
	if a.HTML != b.HTML {
		t.Fatalf("rendering the same digest twice must be byte-identical")
	}
}

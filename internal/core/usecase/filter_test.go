package usecase

import (
	"fmt"
	"testing"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

func org(name, orgName, orgType string) domain.ServiceRecord {
	return domain.ServiceRecord{
		domain.FieldName:    name,
		domain.FieldOrgName: orgName,
		domain.FieldOrgType: orgType,
	}
}

func TestLocalityFilter(t *testing.T) {
	records := []domain.ServiceRecord{
		org("city", "여주시청", "지방자치단체"),
		org("seoul", "서울시청", "지방자치단체"),
		org("ministry", "보건복지부", "중앙행정기관"),
		org("province", "경기도청", "지방자치단체"),
		org("agency", "국민연금공단", "공공기관"),
		org("other province", "강원특별자치도", "지방자치단체"),
	}

	f := NewLocalityFilter(DefaultLocalityRules())
	got := f.Filter(records)

	want := "[city ministry province agency]"
	if fmt.Sprint(names(got)) != want {
		t.Fatalf("Filter() = %v, want %s", names(got), want)
	}

	again := f.Filter(got)
	if fmt.Sprint(names(again)) != want {
		t.Fatalf("filter must be idempotent, got %v", names(again))
	}
}

func TestLocalityFilterOrgTypeMustMatchExactly(t *testing.T) {
	f := NewLocalityFilter(DefaultLocalityRules())
	if f.Matches(org("x", "어딘가", "중앙행정기관 산하")) {
		t.Fatalf("org type is compared by equality")
	}
	if f.Matches(domain.ServiceRecord{}) {
		t.Fatalf("record without org fields must be dropped")
	}
}

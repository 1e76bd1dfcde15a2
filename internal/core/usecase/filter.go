package usecase

import (
	"strings"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

type LocalityRules struct {
	CityToken        string
	RegionToken      string
	NationalOrgTypes []string
}

func DefaultLocalityRules() LocalityRules {
	return LocalityRules{
		CityToken:        "여주",
		RegionToken:      "경기도",
		NationalOrgTypes: []string{"중앙행정기관", "공공기관"},
	}
}

type LocalityFilter struct {
	rules LocalityRules
}

func NewLocalityFilter(rules LocalityRules) *LocalityFilter {
	return &LocalityFilter{rules: rules}
}

func (f *LocalityFilter) Matches(rec domain.ServiceRecord) bool {
	org := rec.Get(domain.FieldOrgName)
	if f.rules.CityToken != "" && strings.Contains(org, f.rules.CityToken) {
		return true
	}
	if f.rules.RegionToken != "" && strings.Contains(org, f.rules.RegionToken) {
		return true
	}
	orgType := rec.Get(domain.FieldOrgType)
	for _, t := range f.rules.NationalOrgTypes {
		if orgType == t {
			return true
		}
	}
	return false
}

func (f *LocalityFilter) Filter(records []domain.ServiceRecord) []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

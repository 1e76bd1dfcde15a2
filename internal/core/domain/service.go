package domain

// Field names of a gov24 serviceList row.
const (
	FieldServiceID    = "서비스ID"
	FieldName         = "서비스명"
	FieldSummary      = "서비스목적요약"
	FieldSupportType  = "지원유형"
	FieldTarget       = "지원대상"
	FieldContent      = "지원내용"
	FieldMethod       = "신청방법"
	FieldPeriod       = "신청기한"
	FieldDetailURL    = "상세조회URL"
	FieldOrgName      = "소관기관명"
	FieldOrgType      = "소관기관유형"
	FieldServiceField = "서비스분야"
	FieldPhone        = "전화문의"
	FieldRegisteredAt = "등록일시"
	FieldModifiedAt   = "수정일시"
)

// ServiceRecord is one subsidy listing row keyed by upstream field name.
// Absent fields read as the empty string.
type ServiceRecord map[string]string

func (r ServiceRecord) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

func (r ServiceRecord) DatePrefix(field string) string {
	v := r.Get(field)
	if len(v) > 10 {
		return v[:10]
	}
	return v
}

type ServicePage struct {
	Records    []ServiceRecord
	TotalCount int
}

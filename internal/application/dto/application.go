package dto

// CreateApplicationRequest carries the caller-supplied fields for a new
// record. Anything else in the payload is dropped at decode time; ids and
// timestamps are always assigned server-side.
type CreateApplicationRequest struct {
	Position        string `json:"position"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Salary          string `json:"salary"`
	Status          string `json:"status"`
	InterviewRound  string `json:"interview_round"`
	Notes           string `json:"notes"`
	ApplicationDate string `json:"application_date"`
}

// UpdateApplicationRequest is the update whitelist. Pointer fields
// distinguish "absent" from "set to empty"; unlisted payload keys are
// silently ignored, and a payload with none of these set is rejected.
type UpdateApplicationRequest struct {
	Position        *string `json:"position"`
	Company         *string `json:"company"`
	Location        *string `json:"location"`
	Salary          *string `json:"salary"`
	Status          *string `json:"status"`
	InterviewRound  *string `json:"interview_round"`
	Notes           *string `json:"notes"`
	ApplicationDate *string `json:"application_date"`
}

// Fields projects the set members onto column/value pairs.
func (r *UpdateApplicationRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Position != nil {
		fields["position"] = *r.Position
	}
	if r.Company != nil {
		fields["company"] = *r.Company
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.InterviewRound != nil {
		fields["interview_round"] = *r.InterviewRound
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	if r.ApplicationDate != nil {
		fields["application_date"] = *r.ApplicationDate
	}
	return fields
}

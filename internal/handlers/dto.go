package handlers

import "formsd/internal/forms"

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Form not found"`
}

type FormEnvelope struct {
	Success bool       `json:"success" example:"true"`
	Form    forms.Form `json:"form"`
}

type FormsEnvelope struct {
	Success bool         `json:"success" example:"true"`
	Forms   []forms.Form `json:"forms"`
}

type MessageEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Response saved successfully"`
}

type ResponsesEnvelope struct {
	Success   bool             `json:"success" example:"true"`
	Responses []forms.Response `json:"responses"`
}

type FieldsEnvelope struct {
	Success bool          `json:"success" example:"true"`
	Fields  []forms.Field `json:"fields"`
}

type LinkEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Link    string `json:"link" example:"http://localhost:5173/form/form_123?name=Alice"`
}

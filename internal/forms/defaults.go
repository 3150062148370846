package forms

// DefaultFields is the catalog a new form starts from in the builder. All fields are
// enabled.
func DefaultFields() []Field {
	enabled := func() *bool { b := true; return &b }
	return []Field{
		{ID: "name", Label: "Name", Type: FieldText, Enabled: enabled()},
		{ID: "email", Label: "Email", Type: FieldEmail, Enabled: enabled()},
		{ID: "message", Label: "Message", Type: FieldTextarea, Enabled: enabled()},
		{ID: "customerType", Label: "Type of Customer", Type: FieldSelect, Enabled: enabled(), Options: []string{"New", "Returning", "VIP", "Premium"}},
		{ID: "age", Label: "Age", Type: FieldNumber, Enabled: enabled()},
	}
}

package model

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "exact match", input: "Food", want: CategoryFood},
		{name: "lower case", input: "transport", want: CategoryTransport},
		{name: "upper case", input: "BILLS", want: CategoryBills},
		{name: "surrounding whitespace", input: "  Shopping  ", want: CategoryShopping},
		{name: "unknown category", input: "Groceries", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCategory(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}

	if Category("Groceries").Valid() {
		t.Error("unknown category should not be valid")
	}
	if Category("").Valid() {
		t.Error("empty category should not be valid")
	}
}

func TestCategoriesIsClosedSet(t *testing.T) {
	if got := len(Categories()); got != 6 {
		t.Errorf("expected 6 categories, got %d", got)
	}
}

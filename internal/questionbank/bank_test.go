package questionbank

import "testing"

func TestBankShape(t *testing.T) {
	if Len() != 11 {
		t.Fatalf("question count = %d, want 11", Len())
	}
	for i, q := range Questions() {
		if q.Text == "" {
			t.Errorf("question %d has empty text", i)
		}
		if len(q.Options) != OptionCount {
			t.Errorf("question %d has %d options, want %d", i, len(q.Options), OptionCount)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		option  string
		wantErr bool
	}{
		{"first option of first question", 0, "Solving complex problems or puzzles", false},
		{"last option of last question", 10, "Entrepreneurship and business strategy", false},
		{"option from another question", 0, "Structured office environment", true},
		{"negative index", -1, "anything", true},
		{"index past end", 11, "anything", true},
		{"empty option", 3, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.index, tt.option)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%d, %q) error = %v, wantErr %v", tt.index, tt.option, err, tt.wantErr)
			}
		})
	}
}

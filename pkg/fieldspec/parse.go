package fieldspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON or YAML form declaration and validates it. source
// labels errors.
func Parse(data []byte, source string) (Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Form{}, fmt.Errorf("fieldspec: file %s is empty", source)
	}

	var form Form
	if err := json.Unmarshal(data, &form); err != nil {
		form = Form{}
		if err := yaml.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("fieldspec: parse %s: invalid JSON or YAML", source)
		}
	}
	if err := form.Validate(); err != nil {
		return Form{}, fmt.Errorf("fieldspec: %s: %w", source, err)
	}
	return form, nil
}

// ParseFS reads name from fsys and calls Parse.
func ParseFS(fsys fs.FS, name string) (Form, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Form{}, fmt.Errorf("fieldspec: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// PaymentCard is the stock card entry form: a card number with the card
// mask and icon, plus the holder name.
func PaymentCard() Form {
	return Form{
		ID:    "payment-card",
		Title: "Payment card",
		Fields: []Field{
			{
				Name:         "card_number",
				Title:        "Card number",
				Placeholder:  "XXXX XXXX XXXX XXXX",
				Mask:         "card-number",
				Icon:         "Card",
				IconPosition: IconLeft,
				Required:     true,
			},
			{
				Name:        "card_holder",
				Title:       "Name on card",
				Placeholder: "Jane Appleseed",
				Required:    true,
			},
		},
	}
}

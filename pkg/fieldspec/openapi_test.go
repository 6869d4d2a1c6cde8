package fieldspec_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/fieldspec"
)

const paymentsDocument = `
openapi: 3.0.3
info:
  title: Payments
  version: 1.0.0
paths:
  /cards:
    post:
      operationId: addCard
      summary: Add a card
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [number]
              properties:
                number:
                  type: string
                  format: credit-card
                  x-placeholder: "XXXX XXXX XXXX XXXX"
                  x-icon: Card
                  x-icon-position: LEFT
                  x-order: 1
                  x-title: Card number
                expiry:
                  type: string
                  x-mask: "XX/XX"
                  x-order: 2
                  maxLength: 5
                cvc:
                  type: string
                  format: password
                  x-widget: secret
                  x-order: 3
                holder:
                  type: string
                  title: Name on card
                  default: Jane
                save:
                  type: boolean
      responses:
        "201":
          description: created
  /cards/{id}:
    delete:
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "204":
          description: deleted
`

func TestFromOpenAPI(t *testing.T) {
	form, err := fieldspec.FromOpenAPI(context.Background(), []byte(paymentsDocument), "addCard", fieldspec.WithValidation(true))
	if err != nil {
		t.Fatalf("FromOpenAPI: %v", err)
	}

	want := fieldspec.Form{
		ID:    "addCard",
		Title: "Add a card",
		Fields: []fieldspec.Field{
			{Name: "number", Title: "Card number", Placeholder: "XXXX XXXX XXXX XXXX", Format: "credit-card", Icon: "Card", IconPosition: "left", Required: true},
			{Name: "expiry", Mask: "XX/XX", MaxLength: 5},
			{Name: "cvc", Format: "password", Secret: true, Hints: map[string]string{"widget": "secret"}},
			{Name: "holder", Title: "Name on card", Default: "Jane"},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	if got := form.Fields[0].ResolvedMask().String(); got != "XXXX XXXX XXXX XXXX" {
		t.Fatalf("number mask = %q", got)
	}
}

func TestOperations(t *testing.T) {
	ids, err := fieldspec.Operations(context.Background(), []byte(paymentsDocument))
	if err != nil {
		t.Fatalf("Operations: %v", err)
	}
	want := []string{"addCard", "delete:/cards/{id}"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_OperationWithoutBody(t *testing.T) {
	form, err := fieldspec.FromOpenAPI(context.Background(), []byte(paymentsDocument), "delete:/cards/{id}")
	if err != nil {
		t.Fatalf("FromOpenAPI: %v", err)
	}
	if len(form.Fields) != 0 {
		t.Fatalf("expected no fields, got %#v", form.Fields)
	}
}

func TestFromOpenAPI_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := fieldspec.FromOpenAPI(ctx, []byte(paymentsDocument), "nope"); !errors.Is(err, fieldspec.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := fieldspec.FromOpenAPI(ctx, nil, "addCard"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := fieldspec.FromOpenAPI(ctx, []byte("{not json"), "addCard"); err == nil {
		t.Fatalf("expected load error")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := fieldspec.FromOpenAPI(cancelled, []byte(paymentsDocument), "addCard"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFromOpenAPIFS(t *testing.T) {
	fsys := fstest.MapFS{"api/payments.yaml": {Data: []byte(paymentsDocument)}}
	form, err := fieldspec.FromOpenAPIFS(context.Background(), fsys, "api/payments.yaml", "addCard")
	if err != nil {
		t.Fatalf("FromOpenAPIFS: %v", err)
	}
	if len(form.Fields) != 4 {
		t.Fatalf("fields = %d", len(form.Fields))
	}
}

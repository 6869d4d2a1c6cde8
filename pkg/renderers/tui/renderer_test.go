package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/fieldspec"
	"github.com/goliatone/go-formwidgets/pkg/notify"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	infos     []string
	prompts   []InputConfig
	secret    []InputConfig
	err       error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.err != nil {
		return "", s.err
	}
	if len(s.inputs) == 0 {
		return "", errors.New("stub: no input scripted")
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.secret = append(s.secret, cfg)
	if len(s.passwords) == 0 {
		return "", errors.New("stub: no password scripted")
	}
	next := s.passwords[0]
	s.passwords = s.passwords[1:]
	return next, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func buildForm(t *testing.T, spec fieldspec.Form) *render.Form {
	t.Helper()
	form, err := render.Build(spec, nil, widgets.WithNotificationCenter(notify.NewCenter()))
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	t.Cleanup(form.Close)
	return form
}

func TestRenderer_CollectsUnmaskedValues(t *testing.T) {
	driver := &stubDriver{inputs: []string{"4111 1111 1111 1111", "Jane Appleseed"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := buildForm(t, fieldspec.PaymentCard())

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `{"card_holder":"Jane Appleseed","card_number":"4111111111111111"}`
	if string(out) != want {
		t.Fatalf("output = %s, want %s", out, want)
	}
	if len(driver.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(driver.prompts))
	}
	if driver.prompts[0].Message != "Card number" {
		t.Fatalf("message = %q", driver.prompts[0].Message)
	}
	if !strings.Contains(driver.prompts[0].Help, "Format: XXXX XXXX XXXX XXXX") {
		t.Fatalf("help should show the mask, got %q", driver.prompts[0].Help)
	}
	if len(driver.infos) == 0 || !strings.Contains(driver.infos[0], "Payment card") {
		t.Fatalf("expected form title first, got %v", driver.infos)
	}
	if r.ContentType() != "application/json" {
		t.Fatalf("content type = %q", r.ContentType())
	}
}

func TestRenderer_RetriesIncompleteAnswers(t *testing.T) {
	driver := &stubDriver{inputs: []string{"4111", "4111111111111111", "Jane"}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(render.OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := buildForm(t, fieldspec.PaymentCard())

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "card_holder=Jane\ncard_number=4111111111111111\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if len(driver.prompts) != 3 {
		t.Fatalf("expected a retry prompt, got %d prompts", len(driver.prompts))
	}
	if driver.prompts[1].Default != "4111" {
		t.Fatalf("retry should default to the previous text, got %q", driver.prompts[1].Default)
	}

	found := false
	for _, info := range driver.infos {
		if strings.Contains(info, "Card number is incomplete") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected incomplete message, got %v", driver.infos)
	}

	view, _ := form.View("card_number")
	if view.HasError() {
		t.Fatalf("accepted answer should clear the error")
	}
}

func TestRenderer_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", ""}}
	r, err := New(WithPromptDriver(driver), WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := buildForm(t, fieldspec.PaymentCard())

	_, err = r.Render(context.Background(), form, render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	view, _ := form.View("card_number")
	if view.ErrorText() != "Card number is required" {
		t.Fatalf("error text = %q", view.ErrorText())
	}
}

func TestRenderer_SecureFieldsUsePassword(t *testing.T) {
	spec := fieldspec.Form{
		ID: "login",
		Fields: []fieldspec.Field{
			{Name: "email", Required: true},
			{Name: "pin", Secret: true, Required: true},
		},
	}
	driver := &stubDriver{inputs: []string{"ada@example.com"}, passwords: []string{"1234"}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(render.OutputFormatFormURLEncoded))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := buildForm(t, spec)

	out, err := r.Render(context.Background(), form, render.RenderOptions{Values: map[string]string{"pin": "9999"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if string(out) != "email=ada%40example.com&pin=1234" {
		t.Fatalf("output = %s", out)
	}
	if len(driver.secret) != 1 {
		t.Fatalf("expected one password prompt, got %d", len(driver.secret))
	}
	if driver.secret[0].Default != "" {
		t.Fatalf("secure prompts must not carry a default, got %q", driver.secret[0].Default)
	}
}

func TestRenderer_ShowsServerErrors(t *testing.T) {
	driver := &stubDriver{inputs: []string{"4111111111111111", "Jane"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := buildForm(t, fieldspec.PaymentCard())

	_, err = r.Render(context.Background(), form, render.RenderOptions{
		Errors: map[string][]string{
			"card_number": {"Card declined"},
			"_form":       {"Try another card"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	joined := strings.Join(driver.infos, "\n")
	for _, want := range []string{"Card declined", "Try another card"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in infos, got %v", want, driver.infos)
		}
	}
}

func TestRenderer_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := buildForm(t, fieldspec.PaymentCard())

	if _, err := r.Render(context.Background(), form, render.RenderOptions{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRenderer_SubmitTransformer(t *testing.T) {
	driver := &stubDriver{inputs: []string{"4111111111111111", "Jane"}}
	transform := func(values map[string]string) (map[string]string, error) {
		values["card_holder"] = strings.ToUpper(values["card_holder"])
		return values, nil
	}
	r, err := New(WithPromptDriver(driver), WithSubmitTransformer(transform))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := buildForm(t, fieldspec.PaymentCard())

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `"card_holder":"JANE"`) {
		t.Fatalf("transformer not applied: %s", out)
	}

	failing := func(map[string]string) (map[string]string, error) {
		return nil, errors.New("boom")
	}
	r, _ = New(WithPromptDriver(&stubDriver{inputs: []string{"4111111111111111", "Jane"}}), WithSubmitTransformer(failing))
	if _, err := r.Render(context.Background(), buildForm(t, fieldspec.PaymentCard()), render.RenderOptions{}); err == nil {
		t.Fatalf("expected transformer error")
	}
}

func TestRenderer_RejectsInvalidInput(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil form")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, buildForm(t, fieldspec.PaymentCard()), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if _, err := New(WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected unknown output format to fail")
	}
}

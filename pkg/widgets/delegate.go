package widgets

import "github.com/goliatone/go-formwidgets/pkg/mask"

// Delegate receives editing callbacks from a TextField. A delegate implements
// any subset of the interfaces below; a missing approver allows the action.
type Delegate any

// BeginEditingApprover vetoes focus.
type BeginEditingApprover interface {
	ShouldBeginEditing(field *TextField) bool
}

// BeginEditingObserver is told when a field gains focus.
type BeginEditingObserver interface {
	DidBeginEditing(field *TextField)
}

// EndEditingApprover vetoes losing focus.
type EndEditingApprover interface {
	ShouldEndEditing(field *TextField) bool
}

// EndEditingObserver is told when a field loses focus.
type EndEditingObserver interface {
	DidEndEditing(field *TextField)
}

// ClearApprover vetoes clearing the text.
type ClearApprover interface {
	ShouldClear(field *TextField) bool
}

// ReturnApprover decides whether the return key is processed.
type ReturnApprover interface {
	ShouldReturn(field *TextField) bool
}

// ChangeObserver is told after an edit changed the text.
type ChangeObserver interface {
	DidChange(field *TextField, edit mask.Edit, decision mask.Decision)
}

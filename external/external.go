// Package external names the three collaborator interfaces the core
// rendering/input pipeline consumes but does not implement: the Jupyter
// kernel client, the Language Server Protocol client, and the format
// converter registry. Transport, wire protocol, and notebook/Markdown
// parsing all belong to host applications; this package exists so the
// layout and display packages that *consume* a converter or a kernel (the
// Display control's convert-and-fit pipeline, a prompt's completion
// request) compile against a real contract.
package external

import "context"

// MimeBundle is a Jupyter-style map from MIME type to rendered payload, as
// delivered by KernelCallbacks.AddOutput.
type MimeBundle map[string][]byte

// DiagnosticLevel mirrors the LSP DiagnosticSeverity range, widened to a
// 0..5 scale so hint/deprecated/unnecessary each get their own slot.
type DiagnosticLevel int

const (
	DiagnosticLevelError DiagnosticLevel = iota
	DiagnosticLevelWarning
	DiagnosticLevelInformation
	DiagnosticLevelHint
	DiagnosticLevelDeprecated
	DiagnosticLevelUnnecessary
)

// Diagnostic is one entry of an LSPClient.OnDiagnostics callback.
type Diagnostic struct {
	Code       string
	Message    string
	Level      DiagnosticLevel
	Link       string
	LineStart  int
	LineEnd    int
	CharStart  int
	CharEnd    int
}

// KernelCallbacks are the notifications a Kernel delivers back to the core
// as execution proceeds; the core registers one set per running cell.
type KernelCallbacks interface {
	AddOutput(bundle MimeBundle, own bool)
	ClearOutput(wait bool)
	SetExecutionCount(n int)
	SetStatus(status string)
	SetKernelInfo(info map[string]any)
	GetInput(prompt string, password bool) (string, error)
}

// Kernel is the Jupyter kernel client contract: code execution, completion,
// completeness checks, and lifecycle control. The core never speaks the
// kernel wire protocol directly; it only calls through this interface and
// renders whatever KernelCallbacks deliver back.
type Kernel interface {
	Run(ctx context.Context, source string) error
	Complete(ctx context.Context, source string, pos int) ([]string, error)
	IsComplete(ctx context.Context, source string) (bool, error)
	Inspect(ctx context.Context, source string, pos int) (string, error)
	Interrupt(ctx context.Context) error
	Restart(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// LSPClient is the Language Server Protocol client contract consumed by the
// core for editor-adjacent features (diagnostics, formatting, completion).
type LSPClient interface {
	OpenDoc(uri string, text string) error
	ChangeDoc(uri string, text string) error
	CloseDoc(uri string) error
	Hover(ctx context.Context, uri string, line, char int) (string, error)
	Complete(ctx context.Context, uri string, line, char int) ([]string, error)
	Format(ctx context.Context, uri string) (string, error)
	OnDiagnostics(uri string, diagnostics []Diagnostic)
}

// ConvertOptions carries the optional parameters a FormatConverter route may
// consult; fields outside a given route's concern are simply ignored.
type ConvertOptions struct {
	Cols, Rows int
	Fg, Bg     string
	WrapLines  bool
	Extra      map[string]any
}

// FormatConverter resolves the shortest known route from a datum's current
// format tag to a requested one and performs the conversion, returning
// either styled text (when the target is textual) or raw bytes (when the
// target is a binary encoding such as PNG or sixel).
type FormatConverter interface {
	Convert(ctx context.Context, datum []byte, fromFormat, toFormat string, opts ConvertOptions) ([]byte, error)
}

// Package browser wraps playwright-go behind the small set of page
// interactions the page objects need.
package browser

// File is an in-memory upload for a file input
type File struct {
	Name     string
	MimeType string
	Content  []byte
}

// Driver performs single locate-then-act or locate-then-read operations on
// the current page. Selector-based calls act on the first match unless an
// index is given.
type Driver interface {
	// Navigate loads a site-relative path or an absolute URL.
	Navigate(path string) error
	URL() string

	Fill(selector, value string) error
	Check(selector string) error
	Select(selector, value string) error
	Click(selector string) error
	ClickAt(selector string, index int) error
	// ForceClickWithin clicks the first child match inside the index-th
	// selector match without waiting for actionability (hover overlays).
	ForceClickWithin(selector string, index int, child string) error
	Hover(selector string, index int) error
	ScrollIntoView(selector string, index int) error
	Upload(selector string, file File) error

	Text(selector string) (string, error)
	TextAt(selector string, index int) (string, error)
	Count(selector string) (int, error)
	IsVisible(selector string) (bool, error)
	WaitVisible(selector string) error
	WaitAttached(selector string) error
	// WaitURL waits until the current URL contains fragment.
	WaitURL(fragment string) error

	// AcceptDialogs accepts every native dialog from now on and records its message.
	AcceptDialogs()
	Dialogs() []string

	Screenshot(path string) error
}

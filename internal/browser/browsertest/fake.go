// Package browsertest provides a scripted browser.Driver for unit tests.
package browsertest

import (
	"fmt"
	"strings"

	"github.com/automationexercise/storefront-e2e/internal/browser"
	"github.com/automationexercise/storefront-e2e/internal/config"
)

// Call is one recorded driver interaction
type Call struct {
	Op       string
	Selector string
	Value    string
}

func (c Call) String() string {
	if c.Value == "" {
		return c.Op + " " + c.Selector
	}
	return fmt.Sprintf("%s %s = %q", c.Op, c.Selector, c.Value)
}

// Driver records every call and answers reads from its maps. Unknown
// selectors are visible, attached and empty; Counts default to 1.
type Driver struct {
	BaseURL string
	Current string

	Texts   map[string]string
	Counts  map[string]int
	Hidden  map[string]bool
	Missing map[string]bool
	// Errors fails the call whose "op selector" key matches.
	Errors map[string]error
	// Navigations moves Current when the keyed "op selector" call succeeds.
	// Successive calls take successive destinations; the last one repeats.
	Navigations map[string][]string
	// DialogMessages are replayed into Dialogs once AcceptDialogs is called.
	DialogMessages []string

	Calls     []Call
	accepting bool
	uploads   []browser.File
}

// New returns a fake whose relative navigation resolves against baseURL
func New(baseURL string) *Driver {
	return &Driver{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Texts:       map[string]string{},
		Counts:      map[string]int{},
		Hidden:      map[string]bool{},
		Missing:     map[string]bool{},
		Errors:      map[string]error{},
		Navigations: map[string][]string{},
	}
}

func (d *Driver) record(op, selector, value string) error {
	d.Calls = append(d.Calls, Call{Op: op, Selector: selector, Value: value})
	key := op + " " + selector
	if err, ok := d.Errors[key]; ok {
		return err
	}
	if d.Missing[selector] {
		return fmt.Errorf("%s: no element matches %s", op, selector)
	}
	if dests := d.Navigations[key]; len(dests) > 0 {
		d.Current = d.resolve(dests[0])
		if len(dests) > 1 {
			d.Navigations[key] = dests[1:]
		}
	}
	return nil
}

func (d *Driver) resolve(path string) string {
	cfg := config.RunnerConfig{BaseURL: d.BaseURL}
	return cfg.URL(path)
}

// Actions returns recorded calls excluding reads and waits
func (d *Driver) Actions() []Call {
	var out []Call
	for _, c := range d.Calls {
		switch c.Op {
		case "text", "count", "visible", "wait-visible", "wait-attached", "wait-url", "url":
			continue
		}
		out = append(out, c)
	}
	return out
}

// Touched reports whether any call targeted selector
func (d *Driver) Touched(selector string) bool {
	for _, c := range d.Calls {
		if c.Selector == selector {
			return true
		}
	}
	return false
}

// Uploads returns every file passed to Upload
func (d *Driver) Uploads() []browser.File {
	return d.uploads
}

func (d *Driver) Navigate(path string) error {
	if err := d.record("navigate", path, ""); err != nil {
		return err
	}
	d.Current = d.resolve(path)
	return nil
}

func (d *Driver) URL() string {
	return d.Current
}

func (d *Driver) Fill(selector, value string) error {
	return d.record("fill", selector, value)
}

func (d *Driver) Check(selector string) error {
	return d.record("check", selector, "")
}

func (d *Driver) Select(selector, value string) error {
	return d.record("select", selector, value)
}

func (d *Driver) Click(selector string) error {
	return d.record("click", selector, "")
}

func (d *Driver) ClickAt(selector string, index int) error {
	return d.record("click", selector, fmt.Sprint(index))
}

func (d *Driver) ForceClickWithin(selector string, index int, child string) error {
	return d.record("force-click", selector+" "+child, fmt.Sprint(index))
}

func (d *Driver) Hover(selector string, index int) error {
	return d.record("hover", selector, fmt.Sprint(index))
}

func (d *Driver) ScrollIntoView(selector string, index int) error {
	return d.record("scroll", selector, fmt.Sprint(index))
}

func (d *Driver) Upload(selector string, file browser.File) error {
	if err := d.record("upload", selector, file.Name); err != nil {
		return err
	}
	d.uploads = append(d.uploads, file)
	return nil
}

func (d *Driver) Text(selector string) (string, error) {
	return d.TextAt(selector, 0)
}

func (d *Driver) TextAt(selector string, index int) (string, error) {
	if err := d.record("text", selector, ""); err != nil {
		return "", err
	}
	if text, ok := d.Texts[fmt.Sprintf("%s[%d]", selector, index)]; ok {
		return text, nil
	}
	return d.Texts[selector], nil
}

func (d *Driver) Count(selector string) (int, error) {
	if err := d.record("count", selector, ""); err != nil {
		return 0, err
	}
	if n, ok := d.Counts[selector]; ok {
		return n, nil
	}
	return 1, nil
}

func (d *Driver) IsVisible(selector string) (bool, error) {
	if err := d.record("visible", selector, ""); err != nil {
		return false, err
	}
	return !d.Hidden[selector], nil
}

func (d *Driver) WaitVisible(selector string) error {
	if err := d.record("wait-visible", selector, ""); err != nil {
		return err
	}
	if d.Hidden[selector] {
		return fmt.Errorf("wait-visible: %s is hidden", selector)
	}
	return nil
}

func (d *Driver) WaitAttached(selector string) error {
	return d.record("wait-attached", selector, "")
}

func (d *Driver) WaitURL(fragment string) error {
	if err := d.record("wait-url", fragment, ""); err != nil {
		return err
	}
	if !strings.Contains(d.Current, fragment) {
		return fmt.Errorf("wait-url: %s does not contain %q", d.Current, fragment)
	}
	return nil
}

func (d *Driver) AcceptDialogs() {
	d.Calls = append(d.Calls, Call{Op: "accept-dialogs"})
	d.accepting = true
}

func (d *Driver) Dialogs() []string {
	if !d.accepting {
		return nil
	}
	return append([]string(nil), d.DialogMessages...)
}

func (d *Driver) Screenshot(path string) error {
	return d.record("screenshot", path, "")
}

var _ browser.Driver = (*Driver)(nil)

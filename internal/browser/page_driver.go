package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PageDriver implements Driver on a playwright page
type PageDriver struct {
	page    playwright.Page
	resolve func(path string) string
	timeout float64

	mu        sync.Mutex
	dialogs   []string
	listening bool
}

// NewPageDriver creates a driver for page. Navigation paths are turned into
// absolute URLs by resolve, normally RunnerConfig.URL.
func NewPageDriver(page playwright.Page, resolve func(path string) string, timeout time.Duration) *PageDriver {
	return &PageDriver{
		page:    page,
		resolve: resolve,
		timeout: float64(timeout.Milliseconds()),
	}
}

// Page exposes the underlying playwright page
func (d *PageDriver) Page() playwright.Page {
	return d.page
}

func (d *PageDriver) first(selector string) playwright.Locator {
	return d.page.Locator(selector).First()
}

func (d *PageDriver) nth(selector string, index int) playwright.Locator {
	return d.page.Locator(selector).Nth(index)
}

func (d *PageDriver) Navigate(path string) error {
	url := d.resolve(path)
	if _, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(d.timeout * 3),
	}); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (d *PageDriver) URL() string {
	return d.page.URL()
}

func (d *PageDriver) Fill(selector, value string) error {
	if err := d.first(selector).Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", selector, err)
	}
	return nil
}

func (d *PageDriver) Check(selector string) error {
	if err := d.first(selector).Check(); err != nil {
		return fmt.Errorf("check %s: %w", selector, err)
	}
	return nil
}

func (d *PageDriver) Select(selector, value string) error {
	if _, err := d.first(selector).SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	}); err != nil {
		return fmt.Errorf("select %q in %s: %w", value, selector, err)
	}
	return nil
}

func (d *PageDriver) Click(selector string) error {
	if err := d.first(selector).Click(); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

func (d *PageDriver) ClickAt(selector string, index int) error {
	if err := d.nth(selector, index).Click(); err != nil {
		return fmt.Errorf("click %s[%d]: %w", selector, index, err)
	}
	return nil
}

func (d *PageDriver) ForceClickWithin(selector string, index int, child string) error {
	target := d.nth(selector, index).Locator(child).First()
	if err := target.Click(playwright.LocatorClickOptions{Force: playwright.Bool(true)}); err != nil {
		return fmt.Errorf("click %s in %s[%d]: %w", child, selector, index, err)
	}
	return nil
}

func (d *PageDriver) Hover(selector string, index int) error {
	if err := d.nth(selector, index).Hover(); err != nil {
		return fmt.Errorf("hover %s[%d]: %w", selector, index, err)
	}
	return nil
}

func (d *PageDriver) ScrollIntoView(selector string, index int) error {
	if err := d.nth(selector, index).ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll to %s[%d]: %w", selector, index, err)
	}
	return nil
}

func (d *PageDriver) Upload(selector string, file File) error {
	err := d.first(selector).SetInputFiles([]playwright.InputFile{{
		Name:     file.Name,
		MimeType: file.MimeType,
		Buffer:   file.Content,
	}})
	if err != nil {
		return fmt.Errorf("upload %s to %s: %w", file.Name, selector, err)
	}
	return nil
}

func (d *PageDriver) Text(selector string) (string, error) {
	return d.TextAt(selector, 0)
}

func (d *PageDriver) TextAt(selector string, index int) (string, error) {
	text, err := d.nth(selector, index).TextContent()
	if err != nil {
		return "", fmt.Errorf("read text of %s[%d]: %w", selector, index, err)
	}
	return text, nil
}

func (d *PageDriver) Count(selector string) (int, error) {
	n, err := d.page.Locator(selector).Count()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", selector, err)
	}
	return n, nil
}

func (d *PageDriver) IsVisible(selector string) (bool, error) {
	visible, err := d.first(selector).IsVisible()
	if err != nil {
		return false, fmt.Errorf("visibility of %s: %w", selector, err)
	}
	return visible, nil
}

func (d *PageDriver) WaitVisible(selector string) error {
	return d.waitFor(selector, playwright.WaitForSelectorStateVisible)
}

func (d *PageDriver) WaitAttached(selector string) error {
	return d.waitFor(selector, playwright.WaitForSelectorStateAttached)
}

func (d *PageDriver) waitFor(selector string, state *playwright.WaitForSelectorState) error {
	if err := d.first(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   state,
		Timeout: playwright.Float(d.timeout),
	}); err != nil {
		return fmt.Errorf("wait for %s to be %s: %w", selector, *state, err)
	}
	return nil
}

func (d *PageDriver) WaitURL(fragment string) error {
	pattern := regexp.MustCompile(regexp.QuoteMeta(fragment))
	if err := d.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout:   playwright.Float(d.timeout),
		WaitUntil: playwright.WaitUntilStateCommit,
	}); err != nil {
		return fmt.Errorf("wait for url containing %q (at %s): %w", fragment, d.page.URL(), err)
	}
	return nil
}

func (d *PageDriver) AcceptDialogs() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listening {
		return
	}
	d.listening = true

	d.page.OnDialog(func(dialog playwright.Dialog) {
		d.mu.Lock()
		d.dialogs = append(d.dialogs, dialog.Message())
		d.mu.Unlock()
		_ = dialog.Accept()
	})
}

func (d *PageDriver) Dialogs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dialogs...)
}

func (d *PageDriver) Screenshot(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}
	if _, err := d.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return nil
}

var _ Driver = (*PageDriver)(nil)

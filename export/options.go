package export

// Option configures a pose sheet.
type Option func(*options)

// options holds optional configuration for sheet building.
type options struct {
	title string
}

// defaultOptions returns the default sheet options.
func defaultOptions() options {
	return options{title: "Hand pose sheet"}
}

// WithTitle sets the sheet title, shown on the page and stored in the
// document metadata. Empty titles keep the default.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

package readability

import "log/slog"

// Options configures a Document. The zero value is valid; unset
// numeric fields fall back to their documented defaults.
type Options struct {
	// URL, if set, is the base URL relative links are resolved
	// against. If empty, a <base href> element in the document (if
	// any) is used instead.
	URL string

	// Domain is stripped case-insensitively from both ends of every
	// collected meta-content value before insertion.
	Domain string

	// MinTextLength is the minimum cleaned text length a <p>/<pre>/<td>
	// must have to be scored, and the minimum content length a
	// conditionally-cleaned element must have to survive. Defaults to 25.
	MinTextLength int

	// RetryLength is the minimum serialized output length the
	// ruthless pass must produce before the Driver accepts it without
	// retrying non-ruthlessly. Defaults to 250.
	RetryLength int

	// Debug enables debug-level log records when a Summary call starts,
	// finishes, or fails.
	Debug bool

	// Attributes is reserved for a future attribute-preservation
	// policy; it is currently ignored.
	Attributes bool

	// Logger receives structured log records. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option mutates an Options value; see the With* constructors.
type Option func(*Options)

// WithURL sets the base URL used to resolve relative links.
func WithURL(u string) Option { return func(o *Options) { o.URL = u } }

// WithDomain sets the prefix/suffix stripped from meta-content values.
func WithDomain(domain string) Option { return func(o *Options) { o.Domain = domain } }

// WithMinTextLength overrides the default minimum scored text length.
func WithMinTextLength(n int) Option { return func(o *Options) { o.MinTextLength = n } }

// WithRetryLength overrides the default ruthless-pass length floor.
func WithRetryLength(n int) Option { return func(o *Options) { o.RetryLength = n } }

// WithDebug enables verbose pipeline logging.
func WithDebug(debug bool) Option { return func(o *Options) { o.Debug = debug } }

// WithAttributes is reserved; it currently has no effect.
func WithAttributes(attrs bool) Option { return func(o *Options) { o.Attributes = attrs } }

// WithLogger sets the structured logger the Document writes debug
// records to.
func WithLogger(logger *slog.Logger) Option { return func(o *Options) { o.Logger = logger } }

// DefaultOptions returns the zero-configured Options a Document falls
// back to when New is called with no Option values.
func DefaultOptions() Options {
	return Options{
		MinTextLength: 25,
		RetryLength:   250,
		Logger:        slog.Default(),
	}
}

// Article is the convenience view produced by Document.Article: the
// title, short title, cleaned body, and extracted summary, plus the
// byline when one was found.
type Article struct {
	Title      string
	ShortTitle string
	Content    string
	Summary    string
	Byline     string
}

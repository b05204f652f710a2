// Package sheet maps the Google Sheets and Drive REST resources onto local
// object models - Spreadsheet, Worksheet, Cell and DataRange - and keeps
// local mutations synchronised with the service, either immediately or
// coalesced into batched update requests.
package sheet

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"
const folderMimeType = "application/vnd.google-apps.folder"

// The API rejects value updates touching more than this many cells in a
// single call - larger updates are split.
const cellUpdateLimit = 50000

var urlKeyRegexes = []*regexp.Regexp{
	regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/([^/?#]+)(?:/.*)?$`),
	regexp.MustCompile(`key=([^&#]+)`),
}

// Client communicates with the Sheets v4 and Drive v3 APIs on behalf of the
// local models. All remote calls go through the client so that the request
// rate limit and the retry policy are applied uniformly.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service

	limiter    *rate.Limiter
	retries    int
	maxBackoff time.Duration
	log        *logrus.Logger

	batches map[string]*queue
}

// Option configures a Client.
type Option func(*client)

type client struct {
	apiOptions []option.ClientOption
	limiter    *rate.Limiter
	retries    int
	maxBackoff time.Duration
	log        *logrus.Logger
}

// WithHTTPClient uses an already authorized HTTP client (e.g. from the auth
// package) for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.apiOptions = append(c.apiOptions, option.WithHTTPClient(hc))
	}
}

// WithCredentialsFile authorizes with a service account key file.
func WithCredentialsFile(path string) Option {
	return func(c *client) {
		c.apiOptions = append(c.apiOptions, option.WithCredentialsFile(path))
	}
}

// WithAPIOptions appends raw Google API client options (custom endpoints,
// no-auth transports for tests, etc).
func WithAPIOptions(opts ...option.ClientOption) Option {
	return func(c *client) {
		c.apiOptions = append(c.apiOptions, opts...)
	}
}

// WithLogger replaces the default logrus standard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *client) {
		c.log = log
	}
}

// WithQuota sets the client side request quota. The API default is 100
// requests per 100 seconds per user, which is also the default here.
func WithQuota(requests int, per time.Duration) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(float64(requests)/per.Seconds()), requests)
	}
}

// WithRetries sets how many times a quota-limited request is retried before
// the error is surfaced.
func WithRetries(retries int) Option {
	return func(c *client) {
		c.retries = retries
	}
}

// NewClient builds a client for the Sheets and Drive APIs.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := client{
		limiter:    rate.NewLimiter(rate.Limit(1.0), 100),
		retries:    3,
		maxBackoff: 60 * time.Second,
		log:        logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	google, err := sheets.NewService(ctx, cfg.apiOptions...)
	if err != nil {
		return nil, wrapAPI("create sheets service", err)
	}

	gdrive, err := drive.NewService(ctx, cfg.apiOptions...)
	if err != nil {
		return nil, wrapAPI("create drive service", err)
	}

	return &Client{
		sheets:     google,
		drive:      gdrive,
		limiter:    cfg.limiter,
		retries:    cfg.retries,
		maxBackoff: cfg.maxBackoff,
		log:        cfg.log,
		batches:    map[string]*queue{},
	}, nil
}

// call executes a remote call under the rate limiter, retrying with
// exponential backoff while the service reports quota exhaustion.
func call[T any](ctx context.Context, c *Client, op string, fn func() (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return zero, wrapAPI(op, err)
		}

		c.log.WithField("op", op).Debug("api call")

		v, err := fn()
		if err == nil {
			return v, nil
		}

		if attempt >= c.retries || !retryable(err) {
			return zero, wrapAPI(op, err)
		}

		backoff := time.Duration(1<<attempt) * time.Second
		if backoff > c.maxBackoff {
			backoff = c.maxBackoff
		}

		c.log.WithField("op", op).Warnf("rate limited, retrying in %v", backoff)

		select {
		case <-ctx.Done():
			return zero, wrapAPI(op, ctx.Err())

		case <-time.After(backoff):
		}
	}
}

// Create creates a new (empty) spreadsheet with the given title.
func (c *Client) Create(ctx context.Context, title string) (*Spreadsheet, error) {
	body := sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}

	resource, err := call(ctx, c, "create spreadsheet", func() (*sheets.Spreadsheet, error) {
		return c.sheets.Spreadsheets.Create(&body).Context(ctx).Do()
	})
	if err != nil {
		return nil, err
	}

	return newSpreadsheet(c, resource), nil
}

// Open opens the first spreadsheet with the given title from the user's
// drive.
func (c *Client) Open(ctx context.Context, title string) (*Spreadsheet, error) {
	files, err := c.spreadsheetFiles(ctx, title)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, wrapAPI("open '"+title+"'", ErrSpreadsheetNotFound)
	}

	return c.OpenByKey(ctx, files[0].Id)
}

// OpenAll opens every spreadsheet in the user's drive, optionally filtered
// by title.
func (c *Client) OpenAll(ctx context.Context, title string) ([]*Spreadsheet, error) {
	files, err := c.spreadsheetFiles(ctx, title)
	if err != nil {
		return nil, err
	}

	list := make([]*Spreadsheet, 0, len(files))
	for _, f := range files {
		spreadsheet, err := c.OpenByKey(ctx, f.Id)
		if err != nil {
			return nil, err
		}

		list = append(list, spreadsheet)
	}

	return list, nil
}

// OpenByKey opens the spreadsheet with the given key (the id that appears
// in a browser URL).
func (c *Client) OpenByKey(ctx context.Context, key string) (*Spreadsheet, error) {
	resource, err := c.fetch(ctx, key, "", false)
	if err != nil {
		return nil, err
	}

	return newSpreadsheet(c, resource), nil
}

// OpenByURL opens a spreadsheet from its URL as it appears in a browser.
func (c *Client) OpenByURL(ctx context.Context, url string) (*Spreadsheet, error) {
	for _, re := range urlKeyRegexes {
		if match := re.FindStringSubmatch(url); len(match) > 1 {
			return c.OpenByKey(ctx, match[1])
		}
	}

	return nil, wrapAPI("open '"+url+"'", ErrNoValidKeyFound)
}

// Delete moves the spreadsheet with the given key to the drive trash.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := call(ctx, c, "delete spreadsheet", func() (struct{}, error) {
		return struct{}{}, c.drive.Files.Delete(key).Context(ctx).Do()
	})

	return err
}

// spreadsheetFiles lists the spreadsheet files in the user's drive,
// following page tokens, optionally filtered by name.
func (c *Client) spreadsheetFiles(ctx context.Context, title string) ([]*drive.File, error) {
	q := "mimeType='" + spreadsheetMimeType + "'"
	if title != "" {
		q += " and name='" + title + "'"
	}

	files := []*drive.File{}
	page := ""

	for {
		list, err := call(ctx, c, "list spreadsheets", func() (*drive.FileList, error) {
			rq := c.drive.Files.List().Q(q).PageSize(500).Fields("files(id, name, parents), nextPageToken")
			if page != "" {
				rq = rq.PageToken(page)
			}

			return rq.Context(ctx).Do()
		})
		if err != nil {
			return nil, err
		}

		files = append(files, list.Files...)

		if page = list.NextPageToken; page == "" {
			break
		}
	}

	return files, nil
}

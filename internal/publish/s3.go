package publish

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/vangoui/internal/errors"
)

// PutObjectAPI is the part of *s3.Client the publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ PutObjectAPI = (*s3.Client)(nil)

// ClientOptions describes how to reach the bucket.
type ClientOptions struct {
	Region string

	// Endpoint targets an S3-compatible store instead of AWS. Path-style
	// addressing is used when set.
	Endpoint string
}

// NewS3Client builds a client from ClientOptions. Credentials come from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(opts ClientOptions) *s3.Client {
	return s3.New(s3.Options{
		Region:      opts.Region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New("E151").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set").
			WithSuggestion("Export the credentials for an account that can write to the bucket")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}

// PublishOption configures a Publisher.
type PublishOption func(*Publisher)

// WithPrefix sets the key prefix. A trailing slash is added if missing.
func WithPrefix(prefix string) PublishOption {
	return func(p *Publisher) {
		prefix = strings.Trim(prefix, "/")
		if prefix != "" {
			prefix += "/"
		}
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func WithCacheControl(v string) PublishOption {
	return func(p *Publisher) {
		p.cacheControl = v
	}
}

// WithUploadConcurrency bounds the number of uploads in flight.
func WithUploadConcurrency(n int) PublishOption {
	return func(p *Publisher) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithPublishLogger sets the logger for progress messages.
func WithPublishLogger(logger *slog.Logger) PublishOption {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Publisher uploads an exported catalog to a bucket.
type Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
	concurrency  int
	logger       *slog.Logger
}

// NewPublisher creates a publisher for bucket.
func NewPublisher(client PutObjectAPI, bucket string, opts ...PublishOption) *Publisher {
	p := &Publisher{
		client:       client,
		bucket:       bucket,
		cacheControl: "public, max-age=300",
		concurrency:  8,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the object key for an export-relative path.
func (p *Publisher) Key(rel string) string {
	return p.prefix + filepath.ToSlash(rel)
}

// Publish uploads every regular file under dir and returns the keys
// written, sorted. The first failed upload cancels the rest.
func (p *Publisher) Publish(ctx context.Context, dir string) ([]string, error) {
	if p.bucket == "" {
		return nil, errors.New("E151").
			WithDetail("no bucket configured").
			WithSuggestion("Pass --bucket or set publish.bucket in vangoui.json")
	}

	var files []string
	err := filepath.WalkDir(dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, err := filepath.Rel(dir, name)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, publishErr(dir, err)
	}
	sort.Strings(files)

	var uploaded atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, rel := range files {
		g.Go(func() error {
			if err := p.upload(gctx, dir, rel); err != nil {
				return err
			}
			uploaded.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	keys := make([]string, len(files))
	for i, rel := range files {
		keys[i] = p.Key(rel)
	}
	p.logger.Info("publish complete", "bucket", p.bucket, "prefix", p.prefix, "objects", uploaded.Load())
	return keys, nil
}

func (p *Publisher) upload(ctx context.Context, dir, rel string) error {
	f, err := os.Open(filepath.Join(dir, rel))
	if err != nil {
		return publishErr(rel, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return publishErr(rel, err)
	}

	key := p.Key(rel)
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentType(rel)),
		CacheControl:  aws.String(p.cacheControl),
	})
	if err != nil {
		return publishErr(key, err)
	}
	p.logger.Debug("uploaded object", "key", key, "bytes", info.Size())
	return nil
}

func contentType(name string) string {
	if t := mime.TypeByExtension(path.Ext(filepath.ToSlash(name))); t != "" {
		return t
	}
	return "application/octet-stream"
}

func publishErr(target string, err error) error {
	if errors.Code(err) != "" {
		return err
	}
	return errors.New("E151").WithDetailf("%s: %v", target, err).Wrap(err)
}

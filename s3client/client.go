package s3client

import (
	"bytes"
	"text2phenotype.com/postag/logger"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"sync"
)

const maxRetries = 4

type Client struct {
	mu   sync.Mutex
	curr *session.Session
	env  EnvironmentConfig
}

var clientLogger = logger.NewLogger("S3Client")
var sdkLogger = logger.NewLogger("S3-SDK")

func New() (*Client, error) {
	errLogger := clientLogger.With().Caller().Logger()
	env, err := readEnvironment(&errLogger)
	if err != nil {
		clientLogger.Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}
	client := Client{env: env}
	if err := client.acquireNewSession(); err != nil {
		return nil, err
	}
	return &client, nil
}

func (client *Client) Upload(bucket string, key string, data []byte) error {
	params := &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	sess, err := client.session()
	if err != nil {
		return err
	}
	if _, err = client.upload(sess, params); err == nil {
		return nil
	}
	sess, err = client.tryRefreshingSession(err)
	if err != nil {
		return err
	}
	params.Body = bytes.NewReader(data)
	_, err = client.upload(sess, params)
	return err
}

func (client *Client) Download(bucket string, key string) ([]byte, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	sess, err := client.session()
	if err != nil {
		return nil, err
	}
	res, err := client.download(sess, params)
	if err == nil {
		return res, nil
	}
	sess, err = client.tryRefreshingSession(err)
	if err != nil {
		return nil, err
	}
	return client.download(sess, params)
}

func (client *Client) upload(sess *session.Session, params *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
	s3Logger := clientLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	sdkLog := sdkLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	uploader := s3manager.NewUploader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))
	s3Logger.Debug().Msg("Uploading the file")
	return uploader.Upload(params)
}

func (client *Client) download(sess *session.Session, params *s3.GetObjectInput) ([]byte, error) {
	s3Logger := clientLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	sdkLog := sdkLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	downloader := s3manager.NewDownloader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))

	buf := aws.NewWriteAtBuffer([]byte{})

	s3Logger.Debug().Msg("Downloading file")

	size, err := downloader.Download(buf, params)
	if err != nil {
		s3Logger.Error().Err(err).Msg("Failed to download file")
		return nil, err
	}
	s3Logger.Debug().Msgf("Downloaded %v bytes", size)
	return buf.Bytes(), nil
}

func (client *Client) tryRefreshingSession(err error) (*session.Session, error) {
	clientLogger.Error().Err(err).Msg("Caught error while using S3 session, trying to refresh it")
	if err := client.acquireNewSession(); err != nil {
		clientLogger.Error().Err(err).Msg("Caught error while refreshing S3 session")
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	clientLogger.Info().Msg("Successfully refreshed session")
	return client.session()
}

func (client *Client) session() (*session.Session, error) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if client.curr == nil {
		return nil, errors.New("could not get session")
	}
	return client.curr, nil
}

func (client *Client) setSession(sess *session.Session) {
	client.mu.Lock()
	client.curr = sess
	client.mu.Unlock()
}

func (client *Client) createDefaultConfig() *aws.Config {
	return &aws.Config{
		Region:     aws.String(client.env.Region),
		MaxRetries: aws.Int(maxRetries),
		LogLevel:   aws.LogLevel(aws.LogDebug),
	}
}

func (client *Client) createEnvConfig() (*aws.Config, error) {
	creds := credentials.NewStaticCredentials(
		client.env.AccessKeyID,
		client.env.AccessKey,
		"")
	if _, err := creds.Get(); err != nil {
		clientLogger.Error().Err(err).Msg("Error with credentials from environment")
		return nil, err
	}
	cfg := aws.NewConfig().
		WithRegion(client.env.Region).
		WithMaxRetries(maxRetries).
		WithCredentials(creds).
		WithLogLevel(aws.LogDebug)

	if len(client.env.AwsEndpoint) > 0 {
		cfg = cfg.WithEndpoint(client.env.AwsEndpoint).
			WithS3ForcePathStyle(true)
	}
	return cfg, nil
}

// acquireNewSession tries the default credential chain first and falls back
// to the static credentials from the environment.
func (client *Client) acquireNewSession() error {
	sess, err := session.NewSession(
		client.createDefaultConfig(),
	)
	if err != nil {
		client.setSession(nil)
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return err
	}
	_, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err == nil {
		client.setSession(sess)
		clientLogger.Info().Msg("S3 session successfully initialized using default credentials")
		return nil
	}
	clientLogger.Info().Msg("Could not initialize S3 session using default credentials, trying env credentials")
	cfg, err := client.createEnvConfig()
	if err != nil {
		client.setSession(nil)
		return err
	}
	sess, err = session.NewSession(cfg)
	if err != nil {
		client.setSession(nil)
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return err
	}
	_, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err != nil {
		client.setSession(nil)
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return errors.New("could not initialize S3 session")
	}
	client.setSession(sess)
	clientLogger.Info().Msg("S3 session successfully initialized using env credentials")
	return nil
}

type EnvironmentConfig struct {
	Region      string `envconfig:"POSTAG_AWS_REGION" required:"true"`
	AwsEndpoint string `envconfig:"POSTAG_AWS_ENDPOINT_URL" default:""`
	AccessKeyID string `envconfig:"POSTAG_AWS_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"POSTAG_AWS_ACCESS_KEY" default:""`
}

func readEnvironment(errLogger *zerolog.Logger) (EnvironmentConfig, error) {
	var config EnvironmentConfig
	err := envconfig.Process("", &config)
	if err != nil {
		errLogger.Err(err).Msg("Got error while processing environment")
		return config, err
	}
	return config, nil
}

type s3Logger struct {
	sdkLogger zerolog.Logger
}

func getLogger(sdkLogger zerolog.Logger) *s3Logger {
	return &s3Logger{
		sdkLogger,
	}
}

func (logger *s3Logger) Log(v ...interface{}) {
	logger.sdkLogger.Debug().Msg(fmt.Sprint(v...))
}

package s3

import (
	"context"
	"time"

	"merchant/api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

func Init(config *config.Config) *awss3.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var opts []func(*awsconfig.LoadOptions) error
	if config.S3.Region != "" {
		opts = append(opts, awsconfig.WithRegion(config.S3.Region))
	}
	if config.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.S3.AccessKey, config.S3.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		panic("S3: failed to load AWS config: " + err.Error())
	}

	if config.S3.Endpoint == "" {
		return awss3.NewFromConfig(awsCfg)
	}

	return awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		o.BaseEndpoint = aws.String(config.S3.Endpoint)
		o.UsePathStyle = true // localstack / minio
	})
}

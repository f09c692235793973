package sms

import (
	"Care-Crumbs/internal/utils"
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type (
	SnsSender interface {
		SendSMS(ctx context.Context, phoneNumber string, message string) error
	}

	snsSender struct {
		client *sns.Client
	}
)

func NewSnsSender() SnsSender {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}

	return &snsSender{client: sns.NewFromConfig(cfg)}
}

func (s *snsSender) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	})
	return err
}

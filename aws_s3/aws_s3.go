package aws_s3

import (
	"bytes"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/UCDC-Institute/Website_BCMS/settings"
)

var settingsData = settings.GetSettings()

var awsS3 *AWSS3

type AWSS3 struct {
	sess   *session.Session
	bucket string
}

// UploadFile stores data under key and returns the key.
func (a *AWSS3) UploadFile(key string, data []byte, contentType string) (string, error) {
	uploader := s3manager.NewUploader(a.sess)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (a *AWSS3) GetFile(key string) ([]byte, error) {
	downloader := s3manager.NewDownloader(a.sess)
	buffer := aws.NewWriteAtBuffer([]byte{})
	_, err := downloader.Download(buffer, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// PresignedURL signs a temporary GET link for the object.
func (a *AWSS3) PresignedURL(key string, expire time.Duration) (string, error) {
	svc := s3.New(a.sess)
	req, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	return req.Presign(expire)
}

func (a *AWSS3) DeleteFile(key string) error {
	svc := s3.New(a.sess)
	_, err := svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	return err
}

func NewAWSS3() *AWSS3 {
	if awsS3 == nil {
		awsS3 = &AWSS3{
			sess: session.Must(session.NewSession(&aws.Config{
				Region: aws.String(settingsData.AWS_REGION),
			})),
			bucket: settingsData.AWS_BUCKET,
		}
	}
	return awsS3
}

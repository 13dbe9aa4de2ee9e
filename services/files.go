package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/utils"
)

const MAX_IMAGE_SIZE = 5 << 20 // 5 MiB

const PRESIGN_EXPIRE = time.Minute * 15

var filesService *FilesService

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

type FilesService struct{}

type UploadedFile struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadImage stores an admin-submitted image on S3 under a random key
// and returns the key with a presigned URL for immediate preview.
func (f *FilesService) UploadImage(file *multipart.FileHeader) (*UploadedFile, *res.ErrorRes) {
	if file.Size > MAX_IMAGE_SIZE {
		return nil, &res.ErrorRes{
			Err:        errors.New("image exceeds 5mb"),
			StatusCode: http.StatusBadRequest,
		}
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return nil, &res.ErrorRes{
			Err:        errors.New("unsupported image type"),
			StatusCode: http.StatusBadRequest,
		}
	}
	src, err := file.Open()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)
	if _, err := aws.UploadFile(key, data, contentType); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	url, err := aws.PresignedURL(key, PRESIGN_EXPIRE)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &UploadedFile{
		Key: key,
		URL: url,
	}, nil
}

// DownloadGalleryZip streams a zip archive of every gallery image
// stored on this bucket. Images are fetched five at a time.
func (f *FilesService) DownloadGalleryZip(w io.Writer) *res.ErrorRes {
	images, errRes := NewGalleryService().GetGallery()
	if errRes != nil {
		return errRes
	}
	var keys []string
	var titles []string
	for _, image := range images {
		// External URLs are not part of the bucket
		if strings.HasPrefix(image.Image, "http") {
			continue
		}
		keys = append(keys, strings.TrimPrefix(image.Image, "/"))
		titles = append(titles, image.Title)
	}
	files := make([][]byte, len(keys))
	if errRes := utils.Concurrency(5, len(keys), func(index int, setError func(errRes *res.ErrorRes)) {
		data, err := aws.GetFile(keys[index])
		if err != nil {
			setError(&res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			})
			return
		}
		files[index] = data
	}); errRes != nil {
		return errRes
	}

	zipWriter := zip.NewWriter(w)
	for i, data := range files {
		if data == nil {
			continue
		}
		name := fmt.Sprintf("%s_%s", titles[i], filepath.Base(keys[i]))
		entry, err := zipWriter.Create(name)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		if _, err := entry.Write(data); err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
	}
	if err := zipWriter.Close(); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func NewFilesService() *FilesService {
	if filesService == nil {
		filesService = &FilesService{}
	}
	return filesService
}

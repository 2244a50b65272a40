package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"contest_backend/internal/logger"
	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"
	"contest_backend/internal/storage"
	"contest_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const domainMedia = "media"

// sniffLen - столько байт смотрит http.DetectContentType
const sniffLen = 512

// MediaQueue - очередь фоновой обработки загруженных медиа
type MediaQueue interface {
	Enqueue(id string) bool
}

// UploadConfig - ограничения на загружаемые файлы
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type MediaService interface {
	ListMedia(db *gorm.DB, q dto.ListMediaQuery) (*dto.Paginated[dto.MediaResponse], error)
	CreateMedia(db *gorm.DB, req *dto.CreateMediaRequest) (*dto.MediaResponse, error)
	UploadMedia(ctx context.Context, db *gorm.DB, req *dto.UploadMediaRequest, file *multipart.FileHeader) (*dto.MediaResponse, error)
	GetMedia(db *gorm.DB, id string) (*dto.MediaResponse, error)
	UpdateMedia(db *gorm.DB, id string, req *dto.UpdateMediaRequest) (*dto.MediaResponse, error)
	DeleteMedia(ctx context.Context, db *gorm.DB, id string) (*dto.MediaResponse, error)
}

type mediaService struct {
	mediaRepo   repositories.MediaRepository
	profileRepo repositories.ProfileRepository
	storage     storage.Storage
	queue       MediaQueue
	upload      UploadConfig
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
	queue MediaQueue,
	upload UploadConfig,
) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		profileRepo: profileRepo,
		storage:     store,
		queue:       queue,
		upload:      upload,
	}
}

func (s *mediaService) ListMedia(db *gorm.DB, q dto.ListMediaQuery) (*dto.Paginated[dto.MediaResponse], error) {
	q.Normalize()
	filter := repositories.MediaFilter{ProfileID: q.ProfileID, Status: q.Status, Type: q.Type}

	items, total, err := s.mediaRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainMedia)
	}
	page := dto.NewPaginated(dto.MapSlice(items, dto.NewMediaResponse), q.Page, q.Limit, total)
	return &page, nil
}

// CreateMedia регистрирует метаданные объекта, загруженного в обход API
func (s *mediaService) CreateMedia(db *gorm.DB, req *dto.CreateMediaRequest) (*dto.MediaResponse, error) {
	if err := ensureExists(func() (bool, error) { return s.profileRepo.Exists(db, req.ProfileID) }, domainProfile); err != nil {
		return nil, err
	}

	media := req.ToModel()
	if err := s.mediaRepo.Create(db, media); err != nil {
		return nil, handleRepoError(err, domainMedia)
	}
	resp := dto.NewMediaResponse(media)
	return &resp, nil
}

// UploadMedia сохраняет файл в хранилище, создает строку в статусе PROCESSING
// и ставит ее в очередь на построение превью.
func (s *mediaService) UploadMedia(ctx context.Context, db *gorm.DB, req *dto.UploadMediaRequest, file *multipart.FileHeader) (*dto.MediaResponse, error) {
	if file == nil {
		return nil, apperrors.ValidationError(map[string]string{"file": "This field is required"})
	}
	if err := ensureExists(func() (bool, error) { return s.profileRepo.Exists(db, req.ProfileID) }, domainProfile); err != nil {
		return nil, err
	}
	if s.upload.MaxSize > 0 && file.Size > s.upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"maxSize": s.upload.MaxSize})
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("Unable to read uploaded file").WithError(err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperrors.NewBadRequestError("Unable to read uploaded file").WithError(err)
	}
	head = head[:n]
	if len(head) == 0 {
		return nil, apperrors.ValidationError(map[string]string{"file": "File is empty"})
	}

	contentType := detectContentType(head, file.Header.Get("Content-Type"))
	if len(s.upload.AllowedTypes) > 0 && !slices.Contains(s.upload.AllowedTypes, contentType) {
		return nil, apperrors.ErrInvalidFileType.WithDetails(map[string]string{"type": contentType})
	}

	key := storage.NewObjectKey(req.ProfileID, file.Filename)
	body := io.MultiReader(bytes.NewReader(head), src)
	if err := s.storage.Save(ctx, key, body, contentType); err != nil {
		return nil, apperrors.ErrStorage(err)
	}

	name := req.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	}
	create := &dto.CreateMediaRequest{
		Key:              key,
		Name:             name,
		URL:              s.storage.URL(key),
		Size:             file.Size,
		Type:             contentType,
		OriginalFileName: file.Filename,
		ProfileID:        req.ProfileID,
	}
	media := create.ToModel()
	if err := s.mediaRepo.Create(db, media); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.CtxWarn(ctx, "failed to remove orphaned object", "key", key, "error", delErr)
		}
		return nil, handleRepoError(err, domainMedia)
	}

	if s.queue != nil && !s.queue.Enqueue(media.ID) {
		// строку подберет периодический проход воркера
		logger.CtxWarn(ctx, "media queue is full", "media_id", media.ID)
	}

	resp := dto.NewMediaResponse(media)
	return &resp, nil
}

func (s *mediaService) GetMedia(db *gorm.DB, id string) (*dto.MediaResponse, error) {
	media, err := s.mediaRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainMedia)
	}
	resp := dto.NewMediaResponse(media)
	return &resp, nil
}

func (s *mediaService) UpdateMedia(db *gorm.DB, id string, req *dto.UpdateMediaRequest) (*dto.MediaResponse, error) {
	media, err := s.mediaRepo.Update(db, id, req.ToUpdates())
	if err != nil {
		return nil, handleRepoError(err, domainMedia)
	}
	resp := dto.NewMediaResponse(media)
	return &resp, nil
}

// DeleteMedia удаляет строку, затем объекты хранилища; ошибки хранилища только логируются
func (s *mediaService) DeleteMedia(ctx context.Context, db *gorm.DB, id string) (*dto.MediaResponse, error) {
	media, err := s.mediaRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainMedia)
	}

	if s.storage != nil {
		keys := []string{media.Key}
		if media.ThumbnailURL != nil {
			keys = append(keys, storage.ThumbnailKey(media.Key))
		}
		for _, key := range keys {
			if err := s.storage.Delete(ctx, key); err != nil {
				logger.CtxWarn(ctx, "failed to delete media object", "key", key, "error", err)
			}
		}
	}

	resp := dto.NewMediaResponse(media)
	return &resp, nil
}

// detectContentType доверяет сигнатуре файла; заголовок клиента используется,
// только если сигнатура не распознана
func detectContentType(head []byte, declared string) string {
	sniffed := http.DetectContentType(head)
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	if sniffed == "application/octet-stream" && declared != "" {
		return strings.TrimSpace(strings.Split(declared, ";")[0])
	}
	return sniffed
}

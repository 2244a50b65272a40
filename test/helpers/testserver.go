package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"contest_backend/internal/app"
	"contest_backend/internal/auth"
	"contest_backend/internal/config"
	"contest_backend/internal/logger"
	"contest_backend/internal/models"

	"gorm.io/gorm"
)

const testJWTSecret = "my_super_secret_key_for_tests_12345"

var configureOnce sync.Once

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// NewTestServer поднимает полное приложение поверх отдельной SQLite базы.
// Воркер медиа запущен и останавливается вместе с сервером.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.JWT.Secret = testJWTSecret
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 1024 * 1024

	configureOnce.Do(func() {
		logger.InitWithWriter(cfg.Server.Env, io.Discard)
		app.Configure(cfg)
	})

	db := NewTestDB(t)

	router, worker, err := app.SetupRouter(cfg, db)
	if err != nil {
		t.Fatalf("Не удалось собрать роутер: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		cancel()
		worker.Wait()
	})

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
	}
}

// Token выпускает bearer-токен так, как это сделал бы внешний провайдер
func (ts *TestServer) Token(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		t.Fatalf("Не удалось выпустить токен: %v", err)
	}
	return token
}

// LoginAs создает пользователя с профилем и возвращает его токен
func (ts *TestServer) LoginAs(t *testing.T, role models.UserRole) (string, *models.User, *models.Profile) {
	t.Helper()

	user, profile := CreateUserWithProfile(t, ts.DB, role)
	return ts.Token(t, user), user, profile
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// SendMultipart отправляет multipart/form-data: поля fields и один файл в поле fileField
func (ts *TestServer) SendMultipart(t *testing.T, path, token string, fields map[string]string, fileField, fileName string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("Ошибка записи поля %s: %v", k, err)
		}
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("Ошибка создания файла формы: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("Ошибка записи файла формы: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Ошибка закрытия формы: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBodyBytes)
}

// DecodeJSON разбирает тело ответа в out
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()

	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("Не удалось разобрать ответ %q: %v", body, err)
	}
}

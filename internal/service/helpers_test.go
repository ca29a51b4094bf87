package service

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wedding-registry-backend/internal/client"
	"wedding-registry-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedConfig(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.Create(&model.Config{
		SiteTitle:              "Casamento Teste",
		MercadoPagoAccessToken: "test-token",
	}).Error
	if err != nil {
		t.Fatalf("seed config: %v", err)
	}
}

func newFakeProvider(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func jsonHandler(payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, payload)
	}
}

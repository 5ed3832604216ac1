// Package files реализует источник контента поверх каталога JSON-файлов:
// content/{auctions,products,categories}/<id>.json и content/settings/site.json.
// Имя файла без расширения служит идентификатором сущности.
package files

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fsauctions/catalog-backend/internal/domain"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

const (
	auctionsDir   = "auctions"
	productsDir   = "products"
	categoriesDir = "categories"
	settingsFile  = "settings/site.json"
)

// snapshot — неизменяемый снимок контента. Читатели получают указатель
// целиком, перезагрузка подменяет его атомарно.
type snapshot struct {
	auctions   []domain.Auction
	products   []domain.Product
	categories []domain.Category
	settings   *domain.Settings
}

// LoadReport — итог разбора дерева контента.
type LoadReport struct {
	Auctions       int
	Products       int
	Categories     int
	SettingsLoaded bool
	Skipped        []string // пути файлов, пропущенных из-за ошибок разбора
}

// Repo — файловый репозиторий контента со снимком в памяти.
type Repo struct {
	dir    string
	logger logger.Logger
	snap   atomic.Pointer[snapshot]
}

// NewRepo загружает начальный снимок. Отсутствующие каталоги и битые файлы
// не фатальны: соответствующие наборы просто меньше.
func NewRepo(dir string, log logger.Logger) (*Repo, *LoadReport) {
	r := &Repo{dir: dir, logger: log}
	report := r.Reload()
	return r, report
}

// Reload перечитывает дерево контента и атомарно подменяет снимок.
func (r *Repo) Reload() *LoadReport {
	report := &LoadReport{}
	snap := &snapshot{}

	for _, path := range r.listJSON(auctionsDir, report) {
		var model fileAuction
		if !r.readJSON(path, &model, report) {
			continue
		}

		auction, err := model.toDomain(entityID(path))
		if err != nil {
			r.skip(path, err, report)
			continue
		}
		snap.auctions = append(snap.auctions, *auction)
	}

	for _, path := range r.listJSON(productsDir, report) {
		var model fileProduct
		if !r.readJSON(path, &model, report) {
			continue
		}
		snap.products = append(snap.products, *model.toDomain(entityID(path)))
	}

	for _, path := range r.listJSON(categoriesDir, report) {
		var model fileCategory
		if !r.readJSON(path, &model, report) {
			continue
		}
		snap.categories = append(snap.categories, *model.toDomain(entityID(path)))
	}

	settingsPath := filepath.Join(r.dir, filepath.FromSlash(settingsFile))
	var settings fileSettings
	if data, err := os.ReadFile(settingsPath); err == nil {
		if err := json.Unmarshal(data, &settings); err != nil {
			r.skip(settingsPath, err, report)
		} else {
			snap.settings = settings.toDomain()
			report.SettingsLoaded = true
		}
	}

	report.Auctions = len(snap.auctions)
	report.Products = len(snap.products)
	report.Categories = len(snap.categories)

	r.snap.Store(snap)
	return report
}

func (r *Repo) Auctions(_ context.Context) ([]domain.Auction, error) {
	snap := r.snap.Load()
	out := make([]domain.Auction, len(snap.auctions))
	copy(out, snap.auctions)
	return out, nil
}

func (r *Repo) Products(_ context.Context) ([]domain.Product, error) {
	snap := r.snap.Load()
	out := make([]domain.Product, len(snap.products))
	copy(out, snap.products)
	return out, nil
}

func (r *Repo) Categories(_ context.Context) ([]domain.Category, error) {
	snap := r.snap.Load()
	out := make([]domain.Category, len(snap.categories))
	copy(out, snap.categories)
	return out, nil
}

func (r *Repo) Settings(_ context.Context) (*domain.Settings, error) {
	snap := r.snap.Load()
	if snap.settings == nil {
		return nil, nil
	}
	s := *snap.settings
	return &s, nil
}

// listJSON возвращает пути JSON-файлов подкаталога в лексикографическом
// порядке имен; этот порядок и есть порядок хранения.
func (r *Repo) listJSON(sub string, report *LoadReport) []string {
	dir := filepath.Join(r.dir, sub)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			r.skip(dir, err, report)
		}
		return nil
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}

func (r *Repo) readJSON(path string, v any, report *LoadReport) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		r.skip(path, err, report)
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		r.skip(path, err, report)
		return false
	}

	return true
}

func (r *Repo) skip(path string, err error, report *LoadReport) {
	report.Skipped = append(report.Skipped, path)
	r.logger.Warnf("content file skipped: %v", e.Wrap(whereami.WhereAmI(), e.Wrap(path, err)))
}

func entityID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}

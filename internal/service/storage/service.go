package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/logger"
	"github.com/Bsoumyaranjan32/AI-PPTX/pkg/errors"
)

// Service persists generated decks. Only local disk storage is
// implemented; the type switch keeps room for object stores.
type Service struct {
	storageType string
	basePath    string
	logger      *logger.Logger
}

func New(storageType, basePath string, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		storageType: storageType,
		basePath:    basePath,
		logger:      log,
	}
}

// SaveDeck writes the deck under the given id and returns the file path.
func (s *Service) SaveDeck(id string, data []byte) (string, error) {
	switch s.storageType {
	case "local":
		return s.saveLocal(id, data)
	default:
		return s.saveLocal(id, data)
	}
}

func (s *Service) saveLocal(id string, data []byte) (string, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorage, "failed to create output directory")
	}

	ext := detectExtension(data)
	filename := fmt.Sprintf("%s%s", id, ext)
	filePath := filepath.Join(s.basePath, filename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorage, "failed to write file")
	}

	s.logger.Info("saved deck locally", "path", filePath, "size", len(data))
	return filePath, nil
}

// GetDeck reads back a previously saved deck by id.
func (s *Service) GetDeck(id string) ([]byte, error) {
	filename := fmt.Sprintf("%s.pptx", id)
	filePath := filepath.Join(s.basePath, filename)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeNotFound, "deck not found")
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "failed to read file")
	}
	return data, nil
}

func detectExtension(data []byte) string {
	if len(data) < 4 {
		return ".bin"
	}
	// ZIP magic, which covers PPTX containers
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return ".pptx"
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return ".png"
	}
	if data[0] == 0xFF && data[1] == 0xD8 {
		return ".jpg"
	}
	return ".bin"
}

package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-realms/internal/game"
	"github.com/pixil98/go-realms/internal/storage"
)

type StorageConfig struct {
	Classes AssetConfig[*game.Class] `json:"classes"`
	Items   AssetConfig[*game.Item]  `json:"items"`
	Quests  AssetConfig[*game.Quest] `json:"quests"`
	Npcs    AssetConfig[*game.NPC]   `json:"npcs"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	el.Add(c.Classes.Validate("classes"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Quests.Validate("quests"))
	el.Add(c.Npcs.Validate("npcs"))

	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}

// Package assets resolves the named sprites the game draws.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
)

// Name is the logical key of a sprite.
type Name string

// The seven sprites the game needs before the loop can start.
const (
	Player         Name = "player"
	Enemy          Name = "enemy"
	EnemyElite     Name = "enemy_elite"
	PowerUpNormal  Name = "powerup_normal"
	PowerUpScatter Name = "powerup_scatter"
	PowerUpLaser   Name = "powerup_laser"
	PowerUpMissile Name = "powerup_missile"
)

// All lists every required sprite in load order.
var All = []Name{Player, Enemy, EnemyElite, PowerUpNormal, PowerUpScatter, PowerUpLaser, PowerUpMissile}

// files maps each sprite to its file name inside an asset directory.
var files = map[Name]string{
	Player:         "Player.png",
	Enemy:          "Enemy.png",
	EnemyElite:     "Enemy02.png",
	PowerUpNormal:  "01.png",
	PowerUpScatter: "02.png",
	PowerUpLaser:   "03.png",
	PowerUpMissile: "04.png",
}

// ErrMissingAsset is returned when a required sprite cannot be found.
var ErrMissingAsset = errors.New("missing asset")

// Library holds fully decoded sprites keyed by name. It is read-only once
// built and safe to share between sessions.
type Library struct {
	images map[Name]image.Image
}

// Image returns the sprite for name, or nil if the library does not have it.
func (l *Library) Image(name Name) image.Image {
	if l == nil {
		return nil
	}
	return l.images[name]
}

// FileName returns the file a sprite is loaded from.
func FileName(name Name) string {
	return files[name]
}

// Load decodes every sprite from dir. Any missing or undecodable file is
// fatal for the run: there is no retry.
func Load(dir string) (*Library, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadOrBuiltin loads the sprites from dir, or returns the builtin
// placeholders when dir is empty.
func LoadOrBuiltin(dir string) (*Library, error) {
	if dir == "" {
		return Builtin(), nil
	}
	return Load(dir)
}

// LoadFS decodes every sprite from fsys.
func LoadFS(fsys fs.FS) (*Library, error) {
	lib := &Library{images: make(map[Name]image.Image, len(All))}
	for _, name := range All {
		img, err := decode(fsys, files[name])
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		lib.images[name] = img
	}
	return lib, nil
}

func decode(fsys fs.FS, file string) (image.Image, error) {
	f, err := fsys.Open(filepath.ToSlash(file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", file, ErrMissingAsset)
		}
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return img, nil
}

// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/SoftbearStudios/tilegen/cloud/db"
	"github.com/SoftbearStudios/tilegen/cloud/fs"
	"github.com/SoftbearStudios/tilegen/level"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/finnbear/moderation"
	"image/png"
	"strings"
	"time"
)

const (
	// maxNameLength keeps object keys short.
	maxNameLength = 32
	// textureScale enlarges published textures, which are only a few pixels per tile.
	textureScale = 8
	// secondsCache is how long published files may be cached.
	secondsCache = 60 * 60
)

var (
	ErrInvalidName       = errors.New("map name must be 1-32 letters, digits, '-' or '_'")
	ErrInappropriateName = errors.New("map name is inappropriate")
)

// A nil cloud is valid to use with any methods (acts as a no-op)
// This just means the tool is in offline mode
type Cloud struct {
	region   string
	stage    string
	database db.Database
	fs       fs.Filesystem
}

func (cloud *Cloud) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	if cloud == nil {
		builder.WriteString("offline")
	} else {
		builder.WriteString(cloud.region)
		builder.WriteByte(' ')
		builder.WriteString(cloud.stage)
	}
	builder.WriteByte(']')
	return builder.String()
}

// New connects to AWS. Returns nil cloud on error
func New(region, stage string) (*Cloud, error) {
	session, err := getAWSSession(region)
	if err != nil {
		return nil, err
	}

	database, err := db.NewDynamoDBDatabase(session, stage)
	if err != nil {
		return nil, err
	}
	filesystem, err := fs.NewS3Filesystem(session, stage)
	if err != nil {
		return nil, err
	}

	return NewWith(region, stage, database, filesystem), nil
}

// NewWith uses existing services.
func NewWith(region, stage string, database db.Database, filesystem fs.Filesystem) *Cloud {
	return &Cloud{
		region:   region,
		stage:    stage,
		database: database,
		fs:       filesystem,
	}
}

// CheckName rejects names that are not safe as object keys or are inappropriate.
func CheckName(name string) error {
	if len(name) == 0 || len(name) > maxNameLength {
		return ErrInvalidName
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return ErrInvalidName
		}
	}

	// Word boundaries help the scanner
	words := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if moderation.Scan(words).Is(moderation.Inappropriate) {
		return ErrInappropriateName
	}
	return nil
}

// Publish uploads both textures and the config of l and records it in the catalog.
func (cloud *Cloud) Publish(name string, l *level.Level) (err error) {
	if cloud == nil {
		return nil
	}
	if err = CheckName(name); err != nil {
		return
	}

	prefix := "maps/" + name + "/"
	var files []string

	for _, mode := range []terrain.Mode{terrain.ModeHeight, terrain.ModeHeat} {
		var buf bytes.Buffer
		if err = png.Encode(&buf, level.Upscale(l.Render(mode), textureScale)); err != nil {
			return
		}

		filename := mode.String() + ".png"
		if err = cloud.fs.UploadStaticFile(prefix+filename, secondsCache, buf.Bytes()); err != nil {
			return fmt.Errorf("upload %s: %w", filename, err)
		}
		files = append(files, filename)
	}

	configJSON, err := l.Config.Marshal()
	if err != nil {
		return
	}
	if err = cloud.fs.UploadStaticFile(prefix+"config.json", secondsCache, configJSON); err != nil {
		return fmt.Errorf("upload config.json: %w", err)
	}
	files = append(files, "config.json")

	return cloud.database.PutMap(db.Map{
		Name:         name,
		Noise:        l.Config.Noise,
		Seed:         l.Config.Seed,
		WidthInTiles: l.Config.WidthInTiles,
		DepthInTiles: l.Config.DepthInTiles,
		Prefix:       prefix,
		Files:        files,
		Created:      time.Now().Unix(),
	})
}

// Maps lists published maps, newest first.
func (cloud *Cloud) Maps() ([]db.Map, error) {
	if cloud == nil {
		return nil, nil
	}
	maps, err := cloud.database.ReadMaps()
	if err != nil {
		return nil, err
	}
	sortMaps(maps)
	return maps, nil
}

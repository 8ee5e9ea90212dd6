package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/utils"
)

const (
	fileLogPrefix = "file-store"

	htmlDir         = "htmls"
	jsonDir         = "jsons"
	statisticSuffix = "-总计"
)

// FileStore - cache of scraped pages and their json blobs under one directory
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
	}
}

func (f *FileStore) htmlPath(date schema.Date) string {
	return filepath.Join(f.dir, htmlDir, date.Key()+".html")
}

func (f *FileStore) provincesPath(date schema.Date) string {
	return filepath.Join(f.dir, jsonDir, date.Key()+".json")
}

func (f *FileStore) statisticPath(date schema.Date) string {
	return filepath.Join(f.dir, jsonDir, date.Key()+statisticSuffix+".json")
}

// SaveHTML - raw page as fetched
func (f *FileStore) SaveHTML(date schema.Date, html []byte) error {
	return f.save(f.htmlPath(date), html)
}

// SaveProvinces - raw province array
func (f *FileStore) SaveProvinces(date schema.Date, raw []byte) error {
	return f.save(f.provincesPath(date), raw)
}

// SaveStatistic - raw total statistic
func (f *FileStore) SaveStatistic(date schema.Date, raw []byte) error {
	return f.save(f.statisticPath(date), raw)
}

func (f *FileStore) save(p string, data []byte) error {
	if err := utils.WriteFile(p, data); nil != err {
		log.WithFields(log.Fields{
			"prefix": fileLogPrefix,
			"file":   p,
			"error":  err,
		}).Error("write cache file")
		return err
	}

	log.WithFields(log.Fields{
		"prefix": fileLogPrefix,
		"file":   p,
		"size":   len(data),
	}).Debug("cache file written")
	return nil
}

func (f *FileStore) load(p string, v interface{}) error {
	file, err := os.Open(p)
	if nil != err {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, p)
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); nil != err {
		return fmt.Errorf("decode %s: %w", p, err)
	}
	return nil
}

// Provinces - province records of a day
func (f *FileStore) Provinces(date schema.Date) ([]schema.Province, error) {
	var provinces []schema.Province
	if err := f.load(f.provincesPath(date), &provinces); nil != err {
		return nil, err
	}
	return provinces, nil
}

// Province - one province of a day by long or short name
func (f *FileStore) Province(date schema.Date, name string) (schema.Province, error) {
	provinces, err := f.Provinces(date)
	if nil != err {
		return schema.Province{}, err
	}

	p, ok := schema.FindProvince(provinces, name)
	if !ok {
		return schema.Province{}, fmt.Errorf("%w: %s", ErrProvinceNotFound, name)
	}
	return p, nil
}

// TotalStatistic - nationwide counts of a day
func (f *FileStore) TotalStatistic(date schema.Date) (schema.TotalStatistic, error) {
	var statistic schema.TotalStatistic
	if err := f.load(f.statisticPath(date), &statistic); nil != err {
		return schema.TotalStatistic{}, err
	}
	return statistic, nil
}

// Snapshot - provinces and total statistic of a day, validated
func (f *FileStore) Snapshot(ctx context.Context, date schema.Date) (schema.Snapshot, error) {
	if err := ctx.Err(); nil != err {
		return schema.Snapshot{}, err
	}

	provinces, err := f.Provinces(date)
	if nil != err {
		return schema.Snapshot{}, err
	}

	if err := schema.ValidateProvinces(provinces); nil != err {
		return schema.Snapshot{}, err
	}

	statistic, err := f.TotalStatistic(date)
	if nil != err {
		return schema.Snapshot{}, err
	}

	var updateTime int64
	if info, err := os.Stat(f.provincesPath(date)); nil == err {
		updateTime = info.ModTime().UTC().Unix()
	} else {
		updateTime = time.Now().UTC().Unix()
	}

	return schema.Snapshot{
		Key:        date.Key(),
		Date:       date,
		UpdateTime: updateTime,
		Provinces:  provinces,
		Total:      statistic,
	}, nil
}

package janitor

import (
	"context"
	"time"

	"agrifusion/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
)

type (
	// PathSource lists the object keys a table still references.
	PathSource interface {
		GetAllPaths(ctx context.Context) ([]string, error)
	}

	LocalStore interface {
		ListObjects(folder string) ([]storage.StoredObject, error)
		DeleteFile(objectKey string) error
	}

	JanitorService interface {
		Sweep(ctx context.Context) (int, error)
		Start(schedule string) error
		Stop()
	}

	janitorService struct {
		store   LocalStore
		folders []string
		sources []PathSource
		grace   time.Duration
		now     func() time.Time
		cron    *cron.Cron
	}
)

// NewJanitorService removes files under folders that no source references and
// that are older than grace, so uploads still being recorded are left alone.
func NewJanitorService(store LocalStore, folders []string, grace time.Duration, sources ...PathSource) JanitorService {
	return &janitorService{
		store:   store,
		folders: folders,
		sources: sources,
		grace:   grace,
		now:     time.Now,
	}
}

func (j *janitorService) Sweep(ctx context.Context) (int, error) {
	referenced := make(map[string]struct{})
	for _, src := range j.sources {
		paths, err := src.GetAllPaths(ctx)
		if err != nil {
			return 0, err
		}
		for _, p := range paths {
			referenced[p] = struct{}{}
		}
	}

	removed := 0
	cutoff := j.now().Add(-j.grace)
	for _, folder := range j.folders {
		objects, err := j.store.ListObjects(folder)
		if err != nil {
			return removed, err
		}
		for _, obj := range objects {
			if _, ok := referenced[obj.Key]; ok || obj.ModTime.After(cutoff) {
				continue
			}
			if err := j.store.DeleteFile(obj.Key); err != nil {
				log.Warnf("janitor: removing %s: %v", obj.Key, err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}

func (j *janitorService) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		removed, err := j.Sweep(context.Background())
		if err != nil {
			log.Errorf("janitor sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Infof("janitor removed %d orphaned uploads", removed)
		}
	})
	if err != nil {
		return err
	}
	j.cron = c
	c.Start()
	return nil
}

func (j *janitorService) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
	}
}

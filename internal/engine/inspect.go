package engine

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/tango/internal/logger"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
)

// ImageInspector is the subset of the Docker SDK used after a build.
type ImageInspector interface {
	ImageInspect(ctx context.Context, imageID string, opts ...client.ImageInspectOption) (image.InspectResponse, error)
}

type ImageInfo struct {
	ID   string
	Tags []string
	Size int64
}

type inspectCloser interface {
	ImageInspector
	Close() error
}

var newInspector = func() (inspectCloser, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// Inspect asks the daemon about the freshly built image. A client created
// here is closed before returning; an injected Inspector is left to its owner.
func (e *Engine) Inspect(ctx context.Context) (ImageInfo, error) {
	insp := e.Inspector
	if insp == nil {
		c, err := newInspector()
		if err != nil {
			return ImageInfo{}, fmt.Errorf("docker client: %w", err)
		}
		defer func() {
			if cerr := c.Close(); cerr != nil {
				logger.Debug("docker client close: %v", cerr)
			}
		}()
		insp = c
	}

	ctx, cancel := context.WithTimeout(ctx, e.Settings.Timeouts.Probe)
	defer cancel()

	resp, err := insp.ImageInspect(ctx, e.Settings.ImageTag)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("inspect %s: %w", e.Settings.ImageTag, err)
	}
	return ImageInfo{ID: resp.ID, Tags: resp.RepoTags, Size: resp.Size}, nil
}

func (i ImageInfo) ShortID() string {
	const n = len("sha256:") + 12
	if len(i.ID) > n {
		return i.ID[:n]
	}
	return i.ID
}

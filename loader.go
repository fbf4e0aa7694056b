package backdrop

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/disintegration/imaging"
)

// loadResult carries a decoded image back to the update goroutine.
type loadResult struct {
	gen  uint64
	name string
	img  image.Image
	err  error
}

// Loader decodes background images off the update goroutine and hands them
// to an Engine from Poll, which runs on the update goroutine.
//
// Each request is numbered. A result is applied only if no newer request
// has already been applied, so whichever load lands last wins and two images
// never mix. A failed load is logged and otherwise dropped: the engine keeps
// whatever it showed before. There is no retry and no cancellation.
type Loader struct {
	results chan loadResult
	done    chan struct{}
	wg      sync.WaitGroup

	openFn   func(path string) (image.Image, error)
	decodeFn func(r io.Reader) (image.Image, error)

	// Touched only from the update goroutine.
	next     uint64
	applied  uint64
	inflight int
	closed   bool
}

// NewLoader creates a loader. Images are decoded with EXIF orientation
// applied.
func NewLoader() *Loader {
	return &Loader{
		results: make(chan loadResult, 4),
		done:    make(chan struct{}),
		openFn: func(path string) (image.Image, error) {
			return imaging.Open(path, imaging.AutoOrientation(true))
		},
		decodeFn: func(r io.Reader) (image.Image, error) {
			return imaging.Decode(r, imaging.AutoOrientation(true))
		},
	}
}

// Load starts decoding the image file at path.
func (l *Loader) Load(path string) {
	l.start(path, func() (image.Image, error) {
		return l.openFn(path)
	})
}

// LoadReader starts decoding an image from r. name is used in log messages.
// The loader owns r until the decode finishes.
func (l *Loader) LoadReader(name string, r io.Reader) {
	l.start(name, func() (image.Image, error) {
		return l.decodeFn(r)
	})
}

func (l *Loader) start(name string, decode func() (image.Image, error)) {
	if l.closed {
		return
	}
	l.next++
	gen := l.next
	l.inflight++
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := decode()
		if err != nil {
			err = fmt.Errorf("load %s: %w", name, err)
		}
		select {
		case l.results <- loadResult{gen: gen, name: name, img: img, err: err}:
		case <-l.done:
		}
	}()
}

// Poll applies every finished load to e without blocking and reports
// whether e received a new image.
func (l *Loader) Poll(e *Engine) (loaded bool) {
	for {
		select {
		case r := <-l.results:
			l.inflight--
			if r.err != nil {
				Logger().Warn("backdrop: image load failed", "name", r.name, "err", r.err)
				continue
			}
			if r.gen < l.applied {
				Logger().Debug("backdrop: dropping stale image", "name", r.name)
				continue
			}
			l.applied = r.gen
			e.Load(r.img)
			loaded = true
		default:
			return loaded
		}
	}
}

// Pending returns the number of loads that have not been polled yet.
func (l *Loader) Pending() int {
	return l.inflight
}

// Close abandons undelivered results and waits for running decodes to
// return. Further Load calls are ignored.
func (l *Loader) Close() {
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
	l.wg.Wait()
}

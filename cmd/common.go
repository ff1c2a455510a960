package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/kgtool"
	"github.com/kgtool-dev/kgtool/utils"
)

// runBatch feeds paths to worker goroutines under a single progress
// bar. Failures are reported as they happen; the first one is
// returned after all workers drain.
func runBatch(paths []string, concurrency int, progress kgtool.Progress, process func(path string) (string, error)) error {
	if concurrency < 1 {
		concurrency = 1
	}

	progress.InitBar(int64(len(paths)), false)
	defer progress.ShutdownBar()

	var (
		wg       sync.WaitGroup
		lock     sync.Mutex
		firstErr error
	)

	queue := make(chan string)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for path := range queue {
				message, err := process(path)
				if err != nil {
					lock.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("%s: %s", path, err)
					}
					lock.Unlock()

					progress.ColoredPrintf("@r[-]@| %s: %s", path, err)
					progress.AddBar(1)
					continue
				}

				progress.ColoredPrintf("@g[+]@| %s", message)
				progress.AddBar(1)
			}
		}()
	}

	for _, path := range paths {
		queue <- path
	}
	close(queue)
	wg.Wait()

	return firstErr
}

// outputDir resolves the -output flag against the configured default
// and makes sure the directory exists and is writable
func outputDir(cmd *commander.Command) (string, error) {
	dir := cmd.Flag.Lookup("output").Value.String()
	if dir == "" {
		dir = context.Config().OutputDirectory
	}
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", fmt.Errorf("unable to create output directory: %s", err)
	}
	if err := utils.IsDirWritable(dir); err != nil {
		return "", err
	}

	return dir, nil
}

// writePNG writes any image as PNG
func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = png.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// writePPM writes any image as binary P6 PPM
func writePPM(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	if _, err = fmt.Fprintf(out, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		_ = out.Close()
		return err
	}

	row := make([]byte, 0, bounds.Dx()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row = row[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			row = append(row, byte(r>>8), byte(g>>8), byte(b>>8))
		}

		if _, err = out.Write(row); err != nil {
			_ = out.Close()
			return err
		}
	}

	return out.Close()
}

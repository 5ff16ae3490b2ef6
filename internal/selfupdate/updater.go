package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput names the running version and, optionally, a specific
// release tag to install instead of the latest.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported once per stage of an update.
type UpdateProgress struct {
	Stage   string
	Message string
}

// platformAsset describes the release artifact for one OS/arch pair:
// the archive file published on the release and the binary inside it.
type platformAsset struct {
	file   string
	binary string
}

// Update replaces the running binary with the release build for this
// platform. Stages: check, download, verify, extract, apply, done.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag, err := c.resolveTag(ctx, input, progress)
	if err != nil {
		return err
	}

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	archive, err := c.fetchVerifiedArchive(ctx, tag, asset, progress)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := asset.extract(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := swapBinary(binary, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// resolveTag returns the release tag to install: the explicit target
// when given, otherwise the latest release if it is newer than the
// running version.
func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) (string, error) {
	if input.TargetVersion != "" {
		return input.TargetVersion, nil
	}
	progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
	result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return result.LatestVersion, nil
}

// fetchVerifiedArchive downloads the release archive for asset along
// with the release's checksums.txt and verifies the archive's sha256
// before returning it.
func (c *Checker) fetchVerifiedArchive(ctx context.Context, tag string, asset platformAsset, progress func(UpdateProgress)) ([]byte, error) {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	releaseDir := fmt.Sprintf("%s/%s/%s/releases/download/%s", base, c.owner, c.repo, tag)

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.download(ctx, releaseDir+"/"+asset.file)
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	checksums, err := c.download(ctx, releaseDir+"/checksums.txt")
	if err != nil {
		return nil, fmt.Errorf("download checksums: %w", err)
	}
	want, ok := checksumFor(checksums, asset.file)
	if !ok {
		return nil, fmt.Errorf("no checksum found for %s in checksums.txt", asset.file)
	}

	got := sha256.Sum256(archive)
	if hex.EncodeToString(got[:]) != want {
		return nil, fmt.Errorf("%w: expected %s, got %x", ErrChecksum, want, got)
	}
	return archive, nil
}

func (c *Checker) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// assetFor maps a GOOS/GOARCH pair to its release artifact. Release
// archives follow goreleaser naming: csbot_<OS>_<Arch> with a single
// universal darwin build.
func assetFor(goos, goarch string) (platformAsset, error) {
	if goos == "darwin" {
		return platformAsset{file: "csbot_Darwin_all.tar.gz", binary: "csbot"}, nil
	}

	var arch string
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "arm64"
	case "386":
		arch = "i386"
	default:
		return platformAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
	}

	switch goos {
	case "linux":
		return platformAsset{file: fmt.Sprintf("csbot_Linux_%s.tar.gz", arch), binary: "csbot"}, nil
	case "windows":
		return platformAsset{file: fmt.Sprintf("csbot_Windows_%s.zip", arch), binary: "csbot.exe"}, nil
	}
	return platformAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
}

// checksumFor finds the sha256 hex for file in a goreleaser
// checksums.txt ("<hash>  <filename>" per line).
func checksumFor(data []byte, file string) (string, bool) {
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.Fields(line)
		if len(parts) == 2 && parts[1] == file {
			return parts[0], true
		}
	}
	return "", false
}

// extract pulls the platform binary out of the release archive.
func (a platformAsset) extract(data []byte) ([]byte, error) {
	if strings.HasSuffix(a.file, ".zip") {
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("open zip: %w", err)
		}
		for _, f := range r.File {
			if filepath.Base(f.Name) == a.binary {
				rc, err := f.Open()
				if err != nil {
					return nil, err
				}
				defer func() { _ = rc.Close() }()
				return io.ReadAll(rc)
			}
		}
		return nil, fmt.Errorf("binary %q not found in archive", a.binary)
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == a.binary {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", a.binary)
}

// swapBinary writes data next to target and renames it into place,
// preserving the target's mode. The staged file is re-read and its
// hash compared before the rename.
func swapBinary(data []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	stageDir, err := os.MkdirTemp(filepath.Dir(target), ".csbot-update-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(stageDir) }()

	staged := filepath.Join(stageDir, filepath.Base(target)+".new")
	if err := os.WriteFile(staged, data, 0600); err != nil {
		return fmt.Errorf("stage binary: %w", err)
	}

	onDisk, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read staged binary: %w", err)
	}
	wantHash := sha256.Sum256(data)
	gotHash := sha256.Sum256(onDisk)
	if !bytes.Equal(wantHash[:], gotHash[:]) {
		return fmt.Errorf("%w: staged binary changed after write", ErrChecksum)
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}

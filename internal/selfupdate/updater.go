package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
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

// Stage identifies one step of the update flow for progress reporting.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

// ProgressFunc is called once when each stage begins.
type ProgressFunc func(stage Stage, detail string)

// UpdateInput selects what to update from and to. An empty TargetVersion
// means the latest published release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// releaseAsset describes the archive published for one platform: the file
// name in the release, the binary member inside it, and the archive format.
type releaseAsset struct {
	name   string
	binary string
	zipped bool
}

// assetFor maps a GOOS/GOARCH pair onto the release naming scheme.
// Darwin ships a single universal archive; linux and windows are split
// per architecture.
func assetFor(goos, goarch string) (releaseAsset, error) {
	archNames := map[string]string{
		"amd64": "x86_64",
		"arm64": "arm64",
		"386":   "i386",
	}

	switch goos {
	case "darwin":
		return releaseAsset{name: "langdrill_Darwin_all.tar.gz", binary: "langdrill"}, nil
	case "linux":
		arch := archNames[goarch]
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{name: "langdrill_Linux_" + arch + ".tar.gz", binary: "langdrill"}, nil
	case "windows":
		arch := archNames[goarch]
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{name: "langdrill_Windows_" + arch + ".zip", binary: "langdrill.exe", zipped: true}, nil
	default:
		return releaseAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Update resolves the target release, downloads and verifies its archive,
// and swaps the running binary in place. progress may be nil.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress ProgressFunc) error {
	if progress == nil {
		progress = func(Stage, string) {}
	}
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

	archive, err := c.fetchVerified(ctx, tag, asset, progress)
	if err != nil {
		return err
	}

	progress(StageExtract, "Extracting binary...")
	binary, err := asset.extract(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(StageApply, "Applying update...")
	if err := c.install(binary); err != nil {
		return err
	}

	progress(StageDone, "Updated to "+tag)
	return nil
}

// resolveTag returns the release tag to install, consulting the latest
// release when no explicit target was given.
func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput, progress ProgressFunc) (string, error) {
	if input.TargetVersion != "" {
		return input.TargetVersion, nil
	}

	progress(StageCheck, "Checking for latest version...")
	result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return result.LatestVersion, nil
}

// fetchVerified downloads the release archive and its checksums.txt and
// returns the archive only if the published checksum matches.
func (c *Checker) fetchVerified(ctx context.Context, tag string, asset releaseAsset, progress ProgressFunc) ([]byte, error) {
	progress(StageDownload, "Downloading "+tag+"...")
	archive, err := c.fetch(ctx, c.releaseFileURL(tag, asset.name))
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}

	progress(StageVerify, "Verifying checksum...")
	sums, err := c.fetch(ctx, c.releaseFileURL(tag, "checksums.txt"))
	if err != nil {
		return nil, fmt.Errorf("download checksums: %w", err)
	}

	want, ok := checksumFor(sums, asset.name)
	if !ok {
		return nil, fmt.Errorf("no checksum found for %s in checksums.txt", asset.name)
	}
	if got := sha256Hex(archive); got != want {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}
	return archive, nil
}

func (c *Checker) releaseFileURL(tag, file string) string {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, file)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
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

// checksumFor scans a goreleaser-style checksums.txt ("<hex>  <file>" per
// line) for the named file.
func checksumFor(sums []byte, file string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == file {
			return fields[0], true
		}
	}
	return "", false
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// extract pulls the binary member out of the archive.
func (a releaseAsset) extract(archive []byte) ([]byte, error) {
	if a.zipped {
		zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
		if err != nil {
			return nil, fmt.Errorf("open zip: %w", err)
		}
		for _, f := range zr.File {
			if filepath.Base(f.Name) != a.binary {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
		return nil, fmt.Errorf("binary %q not found in archive", a.binary)
	}

	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("binary %q not found in archive", a.binary)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == a.binary {
			return io.ReadAll(tr)
		}
	}
}

// install writes the new binary next to the running one and renames it
// over, keeping the original file mode. The temp copy is re-read and
// hash-compared before the rename.
func (c *Checker) install(binary []byte) error {
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(target), ".langdrill-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	staged := filepath.Join(staging, "langdrill-new")
	if err := os.WriteFile(staged, binary, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	onDisk, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	if sha256Hex(onDisk) != sha256Hex(binary) {
		return fmt.Errorf("%w: temp file was tampered with after write", ErrChecksum)
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}

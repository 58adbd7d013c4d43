package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    releaseAsset
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", releaseAsset{name: "langdrill_Darwin_all.tar.gz", binary: "langdrill"}, false},
		{"darwin arm64", "darwin", "arm64", releaseAsset{name: "langdrill_Darwin_all.tar.gz", binary: "langdrill"}, false},
		{"linux amd64", "linux", "amd64", releaseAsset{name: "langdrill_Linux_x86_64.tar.gz", binary: "langdrill"}, false},
		{"linux arm64", "linux", "arm64", releaseAsset{name: "langdrill_Linux_arm64.tar.gz", binary: "langdrill"}, false},
		{"linux 386", "linux", "386", releaseAsset{name: "langdrill_Linux_i386.tar.gz", binary: "langdrill"}, false},
		{"windows amd64", "windows", "amd64", releaseAsset{name: "langdrill_Windows_x86_64.zip", binary: "langdrill.exe", zipped: true}, false},
		{"unsupported os", "freebsd", "amd64", releaseAsset{}, true},
		{"unsupported arch", "linux", "mips", releaseAsset{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  langdrill_Darwin_all.tar.gz\n" +
		"not a checksum line\n" +
		"\n" +
		"def456  langdrill_Linux_x86_64.tar.gz\n")

	got, ok := checksumFor(sums, "langdrill_Linux_x86_64.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", got)

	_, ok = checksumFor(sums, "langdrill_Windows_x86_64.zip")
	assert.False(t, ok)

	_, ok = checksumFor(nil, "anything")
	assert.False(t, ok)
}

func TestReleaseAssetExtract(t *testing.T) {
	content := []byte("#!/bin/sh\necho langdrill")

	t.Run("tar.gz", func(t *testing.T) {
		asset := releaseAsset{name: "langdrill_Linux_x86_64.tar.gz", binary: "langdrill"}
		got, err := asset.extract(buildTarGz(t, "langdrill", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("tar.gz nested path", func(t *testing.T) {
		asset := releaseAsset{name: "langdrill_Linux_x86_64.tar.gz", binary: "langdrill"}
		got, err := asset.extract(buildTarGz(t, "langdrill_v2/langdrill", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		asset := releaseAsset{name: "langdrill_Windows_x86_64.zip", binary: "langdrill.exe", zipped: true}
		got, err := asset.extract(buildZip(t, "langdrill.exe", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		asset := releaseAsset{name: "langdrill_Linux_x86_64.tar.gz", binary: "langdrill"}
		_, err := asset.extract(buildTarGz(t, "README.md", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("garbage archive", func(t *testing.T) {
		asset := releaseAsset{name: "langdrill_Linux_x86_64.tar.gz", binary: "langdrill"}
		_, err := asset.extract([]byte("not a gzip stream"))
		require.Error(t, err)
	})
}

func TestCheck(t *testing.T) {
	t.Run("update available", func(t *testing.T) {
		srv := newReleaseServer(t, "v1.2.0", nil)
		checker := NewChecker(WithBaseURL(srv.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.2.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v1.2.0", result.ReleaseURL)
	})

	t.Run("already latest, version without v prefix", func(t *testing.T) {
		srv := newReleaseServer(t, "v1.1.0", nil)
		checker := NewChecker(WithBaseURL(srv.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "1.1.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("invalid tag", func(t *testing.T) {
		srv := newReleaseServer(t, "nightly", nil)
		checker := NewChecker(WithBaseURL(srv.URL))

		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("in-place binary swap not exercised on windows")
	}

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	binary := []byte("new-langdrill-binary")
	archive := buildTarGz(t, asset.binary, binary)
	goodSums := []byte(fmt.Sprintf("%s  %s\n", sha256Hex(archive), asset.name))

	// stageTarget creates a fake installed binary and returns a checker
	// pointed at it and at srv, plus a recorder of progress stages.
	stageTarget := func(t *testing.T, srv *httptest.Server) (*Checker, string, *[]Stage) {
		t.Helper()
		execPath := filepath.Join(t.TempDir(), "langdrill")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)
		stages := &[]Stage{}
		return checker, execPath, stages
	}

	t.Run("happy path", func(t *testing.T) {
		srv := newReleaseServer(t, "v2.0.0", map[string][]byte{
			asset.name:      archive,
			"checksums.txt": goodSums,
		})
		checker, execPath, stages := stageTarget(t, srv)

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"},
			func(stage Stage, _ string) { *stages = append(*stages, stage) })
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)

		info, err := os.Stat(execPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

		assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageExtract, StageApply, StageDone}, *stages)
	})

	t.Run("explicit target skips check", func(t *testing.T) {
		srv := newReleaseServer(t, "v9.9.9", map[string][]byte{
			asset.name:      archive,
			"checksums.txt": goodSums,
		})
		checker, _, stages := stageTarget(t, srv)

		err := checker.Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v9.9.9"},
			func(stage Stage, _ string) { *stages = append(*stages, stage) })
		require.NoError(t, err)
		assert.NotContains(t, *stages, StageCheck)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := newReleaseServer(t, "v1.0.0", nil)
		checker := NewChecker(WithBaseURL(srv.URL))

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSums := []byte(fmt.Sprintf("%064d  %s\n", 0, asset.name))
		srv := newReleaseServer(t, "v2.0.0", map[string][]byte{
			asset.name:      archive,
			"checksums.txt": badSums,
		})
		checker, _, _ := stageTarget(t, srv)

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("checksum entry missing", func(t *testing.T) {
		srv := newReleaseServer(t, "v2.0.0", map[string][]byte{
			asset.name:      archive,
			"checksums.txt": []byte("abc123  some_other_file.tar.gz\n"),
		})
		checker, _, _ := stageTarget(t, srv)

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum found")
	})

	t.Run("download failure", func(t *testing.T) {
		srv := newReleaseServer(t, "v2.0.0", nil)
		checker, _, _ := stageTarget(t, srv)

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// newReleaseServer serves the GitHub latest-release endpoint for tag and
// the given release files under the download path. Unknown files 404.
func newReleaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/ifedorova/langdrill/releases/latest",
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		})
	mux.HandleFunc("/ifedorova/langdrill/releases/download/"+tag+"/",
		func(w http.ResponseWriter, r *http.Request) {
			data, ok := files[path.Base(r.URL.Path)]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(data)
		})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func buildTarGz(t *testing.T, member string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: member,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, member string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(member)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

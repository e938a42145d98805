// Package scan walks a source tree and synthesizes a validated SPDX
// document for it: one package owning every regular file, each file
// checksummed and searched for a license identifier tag.
package scan

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

// Options configure a scan.
type Options struct {
	// SkipPatterns are doublestar globs matched against the
	// slash-separated path of each entry relative to the scan root.
	SkipPatterns []string

	// VersionFile names the root-level file read for the package
	// version. It is not recorded as a package file. Defaults to
	// "VERSION".
	VersionFile string

	// OutputName is the artifact the surrounding command writes. A
	// file with that path inside the tree is left out of the document
	// so that regenerating over a previous run stays stable.
	OutputName string

	// CreatorTool is recorded as the document's Tool creator.
	// Defaults to "semsbom".
	CreatorTool string
}

// Scanner builds SPDX documents from directory trees.
type Scanner struct {
	catalog  *license.Catalog
	detector *Detector
	logger   *slog.Logger
	opts     Options
}

// NewScanner creates a scanner. A nil catalog uses the embedded
// license list and a nil logger uses slog.Default.
func NewScanner(catalog *license.Catalog, opts Options, logger *slog.Logger) *Scanner {
	if catalog == nil {
		catalog = license.DefaultCatalog()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.VersionFile == "" {
		opts.VersionFile = "VERSION"
	}
	if opts.CreatorTool == "" {
		opts.CreatorTool = "semsbom"
	}
	return &Scanner{
		catalog:  catalog,
		detector: NewDetector(),
		logger:   logger,
		opts:     opts,
	}
}

// Scan walks root and returns a document describing it. The package is
// named after the root directory, its version comes from the version
// file when one is present, and every surviving regular file becomes a
// package file with a SHA-1 checksum and any detected license tag. The
// returned document always passes validation.
func (s *Scanner) Scan(ctx context.Context, root string) (*spdx.Document, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}

	paths, err := s.collectFiles(ctx, absRoot)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to scan under %s", root)
	}

	pkg := &spdx.Package{
		Name:             filepath.Base(absRoot),
		Version:          s.packageVersion(absRoot),
		DownloadLocation: string(license.NoAssertion),
		ConcludedLicense: license.NoAssertion,
		DeclaredLicense:  license.NoAssertion,
		Copyright:        string(license.None),
	}

	var tagged, untagged int
	seen := map[string]struct{}{}
	for i, rel := range paths {
		full := filepath.Join(absRoot, filepath.FromSlash(rel))
		digest, err := hashFile(full)
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", rel, err)
		}

		value := license.Value(license.NoAssertion)
		if det, ok := s.detectFile(ctx, full, rel); ok {
			parsed, err := license.ParseExpression(s.catalog, det.Identifier)
			if err != nil {
				s.logger.Warn("Unparseable license identifier",
					slog.String("file", rel),
					slog.Int("line", det.Line),
					slog.String("identifier", det.Identifier))
				untagged++
			} else {
				value = parsed
				tagged++
			}
		} else {
			untagged++
		}
		if _, ok := seen[value.String()]; !ok {
			seen[value.String()] = struct{}{}
			pkg.AddLicenseFromFile(value)
		}

		pkg.AddFile(&spdx.File{
			Name:             "./" + rel,
			SPDXID:           fmt.Sprintf("SPDXRef-%d", i+1),
			Checksum:         spdx.NewSHA1(digest),
			ConcludedLicense: license.NoAssertion,
			LicensesInFile:   []license.Value{value},
			Copyright:        string(license.None),
		})
	}

	// The package checksum is the directory hash: the same aggregation
	// over the per-file digests that the verification code uses.
	vc := spdx.ComputeVerificationCode(pkg.Files)
	pkg.VerificationCode = vc
	pkg.Checksum = spdx.NewSHA1(vc.Value)

	dataLicense := s.catalog.FromIdentifier("CC0-1.0")
	doc := &spdx.Document{
		Version:     spdx.Version{Major: 2, Minor: 1},
		DataLicense: &dataLicense,
		Name:        pkg.Name,
		SPDXID:      "SPDXRef-DOCUMENT",
		Namespace:   fmt.Sprintf("https://spdx.org/spdxdocs/%s-%s", pkg.Name, uuid.NewString()),
		CreationInfo: spdx.CreationInfo{
			Creators: []spdx.Creator{spdx.Tool{Name: s.opts.CreatorTool}},
			Created:  time.Now().UTC().Truncate(time.Second),
		},
		Package: pkg,
	}
	if v, err := spdx.ParseVersionPair(s.catalog.Version()); err == nil {
		doc.CreationInfo.LicenseListVersion = v
	}

	if msgs := doc.Validate(); len(msgs) > 0 {
		return nil, fmt.Errorf("generated document failed validation: %s", strings.Join(msgs, "; "))
	}

	s.logger.Info("Scanned source tree",
		slog.String("root", absRoot),
		slog.Int("files", len(paths)),
		slog.Int("tagged", tagged),
		slog.Int("untagged", untagged))
	return doc, nil
}

// collectFiles returns the sorted slash-separated relative paths of
// every regular file under root that no skip rule removes.
func (s *Scanner) collectFiles(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if s.skip(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *Scanner) skip(rel string) bool {
	if rel == s.opts.VersionFile {
		return true
	}
	if s.opts.OutputName != "" && rel == filepath.ToSlash(s.opts.OutputName) {
		return true
	}
	for _, pattern := range s.opts.SkipPatterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func (s *Scanner) detectFile(ctx context.Context, path, rel string) (Detection, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("Could not read file for license scan",
			slog.String("file", rel),
			slog.String("error", err.Error()))
		return Detection{}, false
	}
	return s.detector.Detect(ctx, rel, content)
}

// packageVersion reads the version file at the scan root. Lines of the
// form VERSION_MAJOR=N and VERSION_MINOR=N produce "major.minor"; an
// absent or incomplete file produces an empty version.
func (s *Scanner) packageVersion(root string) string {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(s.opts.VersionFile)))
	if err != nil {
		return ""
	}
	var major, minor string
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "VERSION_MAJOR":
			major = strings.TrimSpace(value)
		case "VERSION_MINOR":
			minor = strings.TrimSpace(value)
		}
	}
	if major == "" || minor == "" {
		return ""
	}
	return major + "." + minor
}

// hashFile streams the file through SHA-1 in 64 KiB blocks.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, 64*1024)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

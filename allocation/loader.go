package allocation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
	"github.com/zkairdrop/claim-service/utils/gerror"
	"golang.org/x/sync/errgroup"
)

// Allocation is the raw content of one distributor deployment.
type Allocation struct {
	AllEligible        [][]string
	L1Eligible         [][]string
	DistributorAddress common.Address
	// Digest commits to both tables and the distributor, it identifies the tree built from them
	Digest common.Hash
}

// Loader reads allocation tables from URLs or local files.
type Loader struct {
	cfg        Config
	httpClient *http.Client
}

// NewLoader creates a new Loader.
func NewLoader(cfg Config) *Loader {
	return &Loader{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout.Duration,
		},
	}
}

// Load reads the configured allocation tables, pairing them with the given distributors.
func (l *Loader) Load(ctx context.Context, distributors []common.Address) ([]*Allocation, error) {
	return l.LoadAllocations(ctx, l.cfg.AllEligiblePaths, l.cfg.L1EligiblePaths, distributors)
}

// LoadAllocations fetches every allocation / eligibility list pair concurrently.
// The result keeps the order of the arguments.
func (l *Loader) LoadAllocations(ctx context.Context, allEligible, l1Eligible []string, distributors []common.Address) ([]*Allocation, error) {
	if len(allEligible) != len(l1Eligible) || len(l1Eligible) != len(distributors) {
		return nil, &gerror.ConfigurationError{
			Msg: fmt.Sprintf("Mismatch between the number of eligibility lists and the L1 addresses list! allEligible: %d, l1Eligible: %d, distributors: %d",
				len(allEligible), len(l1Eligible), len(distributors)),
		}
	}
	if len(allEligible) == 0 {
		return nil, &gerror.ConfigurationError{Msg: "no allocation configured"}
	}

	var (
		allData = make([][]byte, len(allEligible))
		l1Data  = make([][]byte, len(l1Eligible))
		allRows = make([][][]string, len(allEligible))
		l1Rows  = make([][][]string, len(l1Eligible))
	)
	g, gctx := errgroup.WithContext(ctx)
	for i := range allEligible {
		i := i
		g.Go(func() error {
			var err error
			allRows[i], allData[i], err = l.ReadCSV(gctx, allEligible[i])
			return err
		})
		g.Go(func() error {
			var err error
			l1Rows[i], l1Data[i], err = l.ReadCSV(gctx, l1Eligible[i])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*Allocation, 0, len(allEligible))
	for i := range allEligible {
		result = append(result, &Allocation{
			AllEligible:        allRows[i],
			L1Eligible:         l1Rows[i],
			DistributorAddress: distributors[i],
			Digest:             allocationDigest(allData[i], l1Data[i], distributors[i]),
		})
	}
	return result, nil
}

// allocationDigest hashes each table on its own so moving rows between the two tables changes the digest.
func allocationDigest(allData, l1Data []byte, distributor common.Address) common.Hash {
	return common.BytesToHash(keccak256.Hash(keccak256.Hash(allData), keccak256.Hash(l1Data), distributor.Bytes()))
}

// ReadCSV fetches location and parses it. It returns the parsed records and the raw content.
func (l *Loader) ReadCSV(ctx context.Context, location string) ([][]string, []byte, error) {
	data, err := l.fetch(ctx, location)
	if err != nil {
		return nil, nil, &gerror.FetchError{Location: location, Err: err}
	}
	records, err := ParseCSV(data)
	if err != nil {
		return nil, nil, &gerror.ParseError{Location: location, Err: err}
	}
	log.Debugf("read %d rows from %s", len(records), location)
	return records, data, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// plain path, a one letter scheme is a windows drive
		return os.ReadFile(filepath.Clean(location))
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return os.ReadFile(filepath.Clean(u.Path))
	case "http", "https":
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			log.Errorf("close response body of %s failed, err [%v]", location, err)
		}
	}(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status code [%d]", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/proctor/clock"
	"github.com/ayoisaiah/proctor/internal/osutil"
)

// Status is the snapshot written to the status file on every sample so that
// `proctor status` can report on a session running in another terminal.
type Status struct {
	UpdatedAt     time.Time  `json:"updated_at"`
	View          clock.View `json:"view"`
	ChaptersCount int        `json:"chapters_count"`
}

// Label describes the phase the status refers to.
func (s Status) Label() string {
	return phaseLabel(s.View, s.ChaptersCount)
}

// ReportStatus prints the status of the session running in another process.
// Nothing is printed if no session is running.
func ReportStatus(w io.Writer, dbFilePath, statusFilePath string) error {
	db, err := bolt.Open(dbFilePath, osutil.FilePermission, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means proctor is not running, so no status to report
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusFilePath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return errReadStatus.Wrap(err)
	}

	if s.View.Mode == clock.Off {
		return nil
	}

	_, err = fmt.Fprintf(
		w,
		"[%s]: %s (%s)\n",
		s.Label(),
		formatDigits(s.View),
		s.View.Mode,
	)

	return err
}

func writeStatusFile(statusFilePath string, s *Status) (err error) {
	statusFile, err := os.Create(statusFilePath)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

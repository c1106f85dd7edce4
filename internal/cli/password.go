package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dataheck/tickload/internal/db"
)

// resolvePassword fills in the connection password when none was supplied.
//
// Sources, in order:
//  1. Password already present (connection string)
//  2. $PGPASSWORD
//  3. Matching ~/.pgpass entry (PostgreSQL standard format)
//  4. Interactive prompt, when stdin is a terminal
//
// Passwords are never accepted as CLI flags; they would leak into shell
// history and the process list.
func resolvePassword(connConfig *db.ConnConfig) error {
	if connConfig.Password != "" {
		return nil
	}

	if password := os.Getenv("PGPASSWORD"); password != "" {
		connConfig.Password = password
		return nil
	}

	if password, found := lookupPgpass(connConfig.Host, connConfig.Port, connConfig.Database, connConfig.Username); found {
		connConfig.Password = password
		return nil
	}

	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprintf(os.Stderr, "Password for %s@%s: ", connConfig.Username, connConfig.Host)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		connConfig.Password = string(raw)
		return nil
	}

	// Non-interactive with no password source: let the server decide. Trust
	// and peer authentication need none at all.
	return nil
}

// pgpassPath returns the platform-appropriate .pgpass file path.
func pgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// lookupPgpass scans the .pgpass file for the first entry matching
// host:port:database:username. A literal "*" in any field matches anything,
// per the PostgreSQL convention. The file is never written.
func lookupPgpass(host string, port int, database, username string) (string, bool) {
	path := pgpassPath()
	if path == "" {
		return "", false
	}

	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	portStr := strconv.Itoa(port)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}

		if pgpassFieldMatches(fields[0], host) &&
			pgpassFieldMatches(fields[1], portStr) &&
			pgpassFieldMatches(fields[2], database) &&
			pgpassFieldMatches(fields[3], username) {
			return fields[4], true
		}
	}

	return "", false
}

// splitPgpassLine splits on unescaped colons and unescapes \: and \\ within
// each field.
func splitPgpassLine(line string) []string {
	var fields []string
	var current strings.Builder

	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

func pgpassFieldMatches(field, value string) bool {
	return field == "*" || field == value
}

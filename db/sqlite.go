package db

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	// Include SQLite3 for database.
	_ "github.com/mattn/go-sqlite3"

	"github.com/pivotal-cf/tlsprobe"
)

const (
	CipherEnabled     = "enabled"
	CipherDisabled    = "disabled"
	CipherUnsupported = "unsupported"
)

type Database struct {
	db *sql.DB
}

func (d *Database) DB() *sql.DB {
	return d.db
}

func OpenOrCreateDatabase(path string) (*Database, error) {
	_, err := os.Stat(path)

	if os.IsNotExist(err) {
		return CreateDatabase(path)
	} else {
		return OpenDatabase(path)
	}
}

func CreateDatabase(path string) (*Database, error) {
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	_, err = database.Exec(createDDL, SchemaVersion)
	if err != nil {
		return nil, err
	}

	return &Database{db: database}, nil
}

func OpenDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	database := &Database{db: db}

	version := database.Version()

	if version != SchemaVersion {
		return nil, fmt.Errorf("The database version (%d) does not match latest version (%d). Please create a new database.", version, SchemaVersion)
	}

	return database, nil
}

func (db *Database) Close() error {
	return db.db.Close()
}

func (db *Database) Version() int {
	rows, err := db.db.Query("SELECT version FROM version")
	if err != nil {
		return 0
	}

	defer rows.Close()

	hasRow := rows.Next()
	if !hasRow {
		return 0
	}

	var version int
	rows.Scan(&version)

	return version
}

// SaveReport stores one assessment run and returns the identifier it was
// saved under.
func (db *Database) SaveReport(results []tlsprobe.TargetReport) (string, error) {
	tx, err := db.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	reportUUID := uuid.New().String()

	res, err := tx.Exec("INSERT INTO reports(uuid, timestamp) VALUES (?, ?)", reportUUID, time.Now())
	if err != nil {
		return "", err
	}

	reportID, err := res.LastInsertId()
	if err != nil {
		return "", err
	}

	for _, result := range results {
		server := result.Report

		res, err := tx.Exec(
			"INSERT INTO servers(report_id, name, host, port) VALUES (?, ?, ?, ?)",
			reportID, result.Name, server.Host, server.Port,
		)
		if err != nil {
			return "", err
		}

		serverID, err := res.LastInsertId()
		if err != nil {
			return "", err
		}

		for _, protocol := range server.Protocols {
			_, err = tx.Exec(`
			INSERT INTO protocols (
				server_id,
				protocol,
				name,
				enabled,
				unsupported_locally,
				diagnostic
			) VALUES (?, ?, ?, ?, ?, ?)`,
				serverID,
				protocol.Protocol,
				protocol.Name,
				protocol.Enabled,
				protocol.UnsupportedLocally,
				protocol.Diagnostic,
			)
			if err != nil {
				return "", err
			}
		}

		for protocol, lists := range server.Ciphers {
			for state, ciphers := range map[string][]string{
				CipherEnabled:     lists.Enabled,
				CipherDisabled:    lists.Disabled,
				CipherUnsupported: lists.UnsupportedLocally,
			} {
				for _, cipher := range ciphers {
					_, err = tx.Exec(
						"INSERT INTO ciphers(server_id, protocol, cipher, state) VALUES (?, ?, ?, ?)",
						serverID, protocol, cipher, state,
					)
					if err != nil {
						return "", err
					}
				}
			}
		}

		for position, link := range certificateLinks(server) {
			if err := insertCertificate(tx, serverID, position, link); err != nil {
				return "", err
			}
		}

		for _, failure := range server.Errors {
			_, err = tx.Exec(
				"INSERT INTO probe_errors(server_id, protocol, cipher, error) VALUES (?, ?, ?, ?)",
				serverID, failure.Protocol, failure.Cipher, failure.Error,
			)
			if err != nil {
				return "", err
			}
		}
	}

	return reportUUID, tx.Commit()
}

// certificateLinks returns the chain when one was retrieved and otherwise
// the single certificate, if any.
func certificateLinks(server tlsprobe.ServerReport) []tlsprobe.ChainLink {
	if len(server.CertificateChain) > 0 {
		return server.CertificateChain
	}

	if server.Certificate != nil {
		return []tlsprobe.ChainLink{{Certificate: server.Certificate}}
	}

	return nil
}

func insertCertificate(tx *sql.Tx, serverID int64, position int, link tlsprobe.ChainLink) error {
	if link.IsError() {
		_, err := tx.Exec(
			"INSERT INTO certificates(server_id, position, parse_error) VALUES (?, ?, ?)",
			serverID, position, link.Error,
		)
		return err
	}

	cert := link.Certificate
	_, err := tx.Exec(`
	INSERT INTO certificates (
		server_id,
		position,
		serial,
		subject,
		issuer,
		common_name,
		not_before,
		not_after,
		key_algorithm,
		key_bits,
		signature_algorithm,
		fingerprint_sha256,
		pem
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		serverID,
		position,
		cert.Serial,
		cert.Subject.String(),
		cert.Issuer.String(),
		cert.Subject.CommonName,
		cert.NotBefore,
		cert.NotAfter,
		cert.PublicKey.Algorithm,
		cert.PublicKey.Bits,
		cert.SignatureAlgorithm,
		cert.FingerprintSHA256,
		cert.PEM,
	)
	return err
}

package db

// Update the schema version when the DDL changes
const SchemaVersion = 1

const createDDL = `
CREATE TABLE reports (
	id integer PRIMARY KEY AUTOINCREMENT,
	uuid text,
	timestamp datetime,
	UNIQUE(uuid)
);

CREATE TABLE servers (
	id integer PRIMARY KEY AUTOINCREMENT,
	report_id integer,
	name text,
	host text,
	port integer,
	UNIQUE(host, port, name, report_id),
	FOREIGN KEY(report_id) REFERENCES reports(id)
);

CREATE TABLE protocols (
	id integer PRIMARY KEY AUTOINCREMENT,
	server_id integer,
	protocol text,
	name text,
	enabled bool,
	unsupported_locally bool,
	diagnostic text,
	FOREIGN KEY(server_id) REFERENCES servers(id)
);

CREATE TABLE ciphers (
	id integer PRIMARY KEY AUTOINCREMENT,
	server_id integer,
	protocol text,
	cipher text,
	state text,
	FOREIGN KEY(server_id) REFERENCES servers(id)
);

CREATE TABLE certificates (
	id integer PRIMARY KEY AUTOINCREMENT,
	server_id integer,
	position integer,
	serial text,
	subject text,
	issuer text,
	common_name text,
	not_before datetime,
	not_after datetime,
	key_algorithm text,
	key_bits integer,
	signature_algorithm text,
	fingerprint_sha256 text,
	pem text,
	parse_error text,
	FOREIGN KEY(server_id) REFERENCES servers(id)
);

CREATE TABLE probe_errors (
	id integer PRIMARY KEY AUTOINCREMENT,
	server_id integer,
	protocol text,
	cipher text,
	error text,
	FOREIGN KEY(server_id) REFERENCES servers(id)
);

CREATE TABLE version (
	version integer
);

INSERT INTO version(version) VALUES(?);
`

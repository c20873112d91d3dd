package db

// lib/pq registers the "postgres" database/sql driver used by OpenSQL.
import _ "github.com/lib/pq"

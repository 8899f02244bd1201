package config

// DB holds the relational database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string // "postgres" (default) or "mysql"
}

// Mongo holds the document store configuration settings.
type Mongo struct {
	URI  string
	Name string
}

package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SiteURL     string `env:"SITE_URL" envDefault:"https://www.mariliaeiago.com.br"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"registry.db"`

	MercadoPago  MercadoPago  `envPrefix:"MERCADOPAGO_"`
	MercadoLivre MercadoLivre `envPrefix:"MERCADOLIVRE_"`
	Auth         Auth         `envPrefix:"AUTH_"`
}

type MercadoPago struct {
	BaseApiURL    string `env:"BASE_API_URL" envDefault:"https://api.mercadopago.com"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type MercadoLivre struct {
	BaseApiURL  string `env:"BASE_API_URL" envDefault:"https://api.mercadolibre.com"`
	AccessToken string `env:"ACCESS_TOKEN"`
	UserID      string `env:"USER_ID"`
}

type Auth struct {
	AdminPassword string `env:"ADMIN_PASSWORD"`
	JWTSecret     string `env:"JWT_SECRET"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

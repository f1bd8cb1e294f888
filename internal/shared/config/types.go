package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AdminToken     string   `mapstructure:"admin_token"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// EmailConfig is the environment-level SMTP fallback. Values stored through
// the settings service take precedence at runtime.
type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// NotifierConfig tunes the notification scheduler. Durations are seconds.
type NotifierConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	SweepHour           int    `mapstructure:"sweep_hour"`
	SweepOnStart        bool   `mapstructure:"sweep_on_start"`
	SendTimeout         int    `mapstructure:"send_timeout"`
	PassTimeout         int    `mapstructure:"pass_timeout"`
	AttachmentDir       string `mapstructure:"attachment_dir"`
	ReportLookaheadDays int    `mapstructure:"report_lookahead_days"`
	LockTTL             int    `mapstructure:"lock_ttl"`
}

// BusinessConfig carries reseller identity used in outbound messages.
// Values stored through the settings service take precedence at runtime.
type BusinessConfig struct {
	Timezone    string `mapstructure:"timezone"`
	CompanyName string `mapstructure:"company_name"`
	AdminEmail  string `mapstructure:"admin_email"`
	LogoURL     string `mapstructure:"logo_url"`
}

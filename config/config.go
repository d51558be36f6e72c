package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Session   SessionConfigs  `toml:"session"`
	Storage   S3Configs       `toml:"storage"`
	File      FileConfigs     `toml:"file"`
	Redis     RedisConfigs    `toml:"redis"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host         string `toml:"host"`
	Port         string `toml:"port"`
	AllowCORS    []string `toml:"allow_cors"`
	DefaultLimit int    `toml:"default_limit"`
	MaxLimit     int    `toml:"max_limit"`
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret  string        `toml:"token_secret"`
	AccessToken  TokenConfigs  `toml:"access_token"`
	RefreshToken TokenConfigs  `toml:"refresh_token"`
	Identity     IdentityConfigs `toml:"identity"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

// IdentityConfigs describes the mini-app identity provider. The signed
// payload is checked against SecretKey; VerifyURL is the remote fallback.
type IdentityConfigs struct {
	Name      string `toml:"name"`
	SecretKey string `toml:"secret_key"`
	VerifyURL string `toml:"verify_url"`
	IDField   string `toml:"id_field"`
}

type SessionConfigs struct {
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

type S3Configs struct {
	Region         string `toml:"region"`
	Endpoint       string `toml:"endpoint"`
	PublicEndpoint string `toml:"public_endpoint"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	SSLDisabled    bool   `toml:"ssl_disabled"`
}

type FileConfigs struct {
	MaxSize     int64  `toml:"max_size"`
	ImageBucket string `toml:"image_bucket"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

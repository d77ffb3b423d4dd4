package config

// StorageConfig содержит настройки файлового хранилища конспектов.
type StorageConfig struct {
	UploadDir string `yaml:"upload_dir" env:"MARKET_UPLOAD_DIR" env-default:"uploads"`
}

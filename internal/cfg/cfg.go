package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

// ContentSource — вариант источника контента, выбираемый при старте.
type ContentSource string

const (
	SourceStatic ContentSource = "static"
	SourceFiles  ContentSource = "files"
	SourceMinio  ContentSource = "minio"
)

type Config struct {
	Http    *HTTPConfig
	Content *ContentCfg
	Minio   *MinIOCfg // nil, если источник контента не minio
	Redis   *RedisCfg // nil, если кэш отключен
	Kafka   *KafkaCfg // nil, если события аналитики отключены
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ContentCfg struct {
	Source ContentSource
	Dir    string // каталог content/ для источника files
	Watch  bool   // перечитывать контент при изменении файлов
}

type MinIOCfg struct {
	Endpoint    string
	BucketName  string
	AccessKey   string
	SecretKey   string
	UseSSL      bool
	LoadRetries int // число повторов начальной загрузки контента
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	CountsTTL   time.Duration // TTL агрегата счётчиков категорий
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// Файл .env, если есть, подхватывается до чтения переменных окружения.
func Load(log logger.Logger) (*Config, error) {
	_ = godotenv.Load()

	content, err := loadContentCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var minio *MinIOCfg
	if content.Source == SourceMinio {
		minio, err = loadMinIOCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Content: content,
		Minio:   minio,
		Redis:   redis,
		Kafka:   kafka,
	}, nil
}

func loadContentCfg() (*ContentCfg, error) {
	const (
		defaultSource = string(SourceFiles)
		defaultDir    = "content"
	)

	source := ContentSource(getEnvOrDefault("CONTENT_SOURCE", defaultSource))
	switch source {
	case SourceStatic, SourceFiles, SourceMinio:
	default:
		return nil, e.Wrap(string(source), e.ErrUnknownContentSource)
	}

	watch, err := parseBoolEnv("CONTENT_WATCH", false)
	if err != nil {
		return nil, e.Wrap("CONTENT_WATCH", err)
	}

	return &ContentCfg{
		Source: source,
		Dir:    getEnvOrDefault("CONTENT_DIR", defaultDir),
		Watch:  watch,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL      = false
		defaultEndpoint    = "minio:9000"
		defaultLoadRetries = 5
	)

	useSSL, err := parseBoolEnv("MINIO_USE_SSL", defaultUseSSL)
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	bucket := getEnv("CONTENT_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("CONTENT_BUCKET is required for minio content source")
	}

	retries, err := parseIntEnv("MINIO_LOAD_RETRIES", defaultLoadRetries)
	if err != nil {
		return nil, e.Wrap("MINIO_LOAD_RETRIES", err)
	}

	return &MinIOCfg{
		Endpoint:    getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:  bucket,
		AccessKey:   getEnv("MINIO_ROOT_USER"),
		SecretKey:   getEnv("MINIO_ROOT_PASSWORD"),
		UseSSL:      useSSL,
		LoadRetries: retries,
	}, nil
}

// loadRedisCfg возвращает nil без ошибки, когда REDIS_ADDR не задан: кэш опционален.
func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB          = 0
		defaultMaxRetries  = 3
		defaultDialTimeout = 5 * time.Second
		defaultTimeout     = 3 * time.Second
		defaultCountsTTL   = 3 * time.Minute
	)

	addr := getEnv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("REDIS_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid REDIS_MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("REDIS_DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DIAL_TIMEOUT")
		return nil, err
	}

	timeout, err := parseDurationEnv("REDIS_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_TIMEOUT")
		return nil, err
	}

	countsTTL, err := parseDurationEnv("CATEGORY_COUNTS_TTL", defaultCountsTTL)
	if err != nil {
		log.Errorf(err, "invalid CATEGORY_COUNTS_TTL")
		return nil, err
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		CountsTTL:   countsTTL,
	}, nil
}

// loadKafkaCfg возвращает nil без ошибки, когда KAFKA_BROKERS не задан:
// события аналитики опциональны.
func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "catalog-events"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokerStr := getEnv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, nil
	}
	brokers := strings.Split(brokerStr, ",")

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("KAFKA_REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("KAFKA_REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return boolValue, nil
}

package model

import "time"

const DefaultTimeout = 500 * time.Millisecond
const DefaultLockTimeout = 5 * time.Second
const DefaultShutdownTimeout = 10 * time.Second

const HeaderContentType = "Content-Type"
const ContentTypeJSON = "application/json"

type ContextKey string

const KeyContextLogger ContextKey = "logger"

const KeyLoggerError = "error"

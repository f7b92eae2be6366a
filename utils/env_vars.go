package utils

import (
	"fmt"
	"os"
	"strconv"
)

type EnvValue interface {
	~string | ~int | ~bool | ~float64
}

func parseEnv[T EnvValue](envVar, value string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = value
	case *int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not an integer", envVar, value))
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a boolean", envVar, value))
		}
		*ptr = boolValue
	case *float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a number", envVar, value))
		}
		*ptr = floatValue
	}
	return out
}

func GetEnv[T EnvValue](envVar string, defaultValue T) T {
	value, ok := os.LookupEnv(envVar)
	if !ok || value == "" {
		return defaultValue
	}
	return parseEnv[T](envVar, value)
}

func GetRequiredEnv[T EnvValue](envVar string) T {
	value, ok := os.LookupEnv(envVar)
	if !ok || value == "" {
		panic(fmt.Sprintf("environment variable %s is required", envVar))
	}
	return parseEnv[T](envVar, value)
}

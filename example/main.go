// FILE: lixenwraith/simpleconfig/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"time"

	"github.com/lixenwraith/simpleconfig"
	"github.com/lixenwraith/simpleconfig/console"
)

// Person is a record stored through a caller-supplied codec.
type Person struct {
	Name string `conf:"name"`
	Age  int32  `conf:"age"`
}

// AppConfig covers every built-in kind plus a record.
type AppConfig struct {
	Greeting string                           `conf:"testString" section:"Basics" comment:"Shown on startup"`
	Count    int32                            `conf:"testInt"`
	Enabled  bool                             `conf:"testBoolean"`
	Ratio    float64                          `conf:"testDouble"`
	Scale    float32                          `conf:"testFloat"`
	Words    []string                         `conf:"testList" section:"Collections"`
	Weights  map[string]int32                 `conf:"testMap"`
	Anchor   simpleconfig.Pair[string, int64] `conf:"testPair"`
	Marker   simpleconfig.Char                `conf:"testChar" section:"Small numbers"`
	Small    int8                             `conf:"testByte"`
	Medium   int16                            `conf:"testShort"`
	Large    int64                            `conf:"testLong"`
	Timeout  time.Duration                    `conf:"testTimeout" comment:"Go duration string"`
	Owner    Person                           `conf:"testRecord" section:"Records" comment:"Stored with a custom codec"`
}

const configFilePath = "test.conf"

func main() {
	settings := AppConfig{
		Greeting: "Hello World",
		Count:    42,
		Enabled:  true,
		Ratio:    3.14,
		Scale:    3.14,
		Words:    []string{"Hello", "World"},
		Weights:  map[string]int32{"Hello": 1, "World": 2},
		Anchor:   simpleconfig.MakePair("origin", int64(0)),
		Marker:   '~',
		Small:    42,
		Medium:   41,
		Large:    1201136465,
		Timeout:  30 * time.Second,
		Owner:    Person{Name: "John Doe", Age: 42},
	}

	cfg, err := simpleconfig.NewBuilder().
		WithFile(configFilePath).
		WithStruct(&settings).
		WithLogger(simpleconfig.NewConsoleLogger(os.Stdout)).
		WithOverride("testRecord", simpleconfig.StructCodec[Person]()).
		Build()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	v := reflect.ValueOf(settings)
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		fmt.Printf("%s: %v, of type %s\n", field.Name, v.Field(i).Interface(), field.Type)
	}

	// The console helper drives the same surface an in-app command would
	helper := console.New(cfg)
	if out, err := helper.Run([]string{"testInt", "43"}); err != nil {
		fmt.Println("set failed:", err)
	} else {
		fmt.Println(out)
	}
	fmt.Println("suggestions for 'test':", helper.SuggestKeys("test"))
}

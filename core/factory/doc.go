// Package factory instantiates configured modules from a type string
// and a map of raw settings. Call sites register a Factory per type
// name in a Registry, then Create looks up the factory for a
// ModuleConfig and hands it the settings. Decode turns the raw map
// into a typed conf struct. The metrics sink list is the main
// consumer: each entry names a registered sink type.
//
//	reg := factory.NewRegistry[Sink]()
//	reg.Register("file", func(conf map[string]any) (Sink, error) {
//	    var c struct {
//	        Path string `json:"path"`
//	    }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newFileSink(c.Path)
//	})
//	sink, err := reg.Create(factory.ModuleConfig{
//	    Type: "file",
//	    Conf: map[string]any{"path": "events.log"},
//	})
package factory

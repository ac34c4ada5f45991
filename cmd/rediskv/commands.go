package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	setTTL time.Duration
	getRaw bool

	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kv.Set(cmd.Context(), args[0], decodeArg(args[1]), setTTL); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}

	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := kv.Get(cmd.Context(), args[0], !getRaw)
			if err != nil {
				return err
			}
			return printValue(args[0], v)
		},
	}

	delCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Deletes a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kv.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted successfully")
			return nil
		},
	}

	keysCmd = &cobra.Command{
		Use:   "keys [prefix]",
		Short: "Reads every key under a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := kv.GetByPrefix(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, e := range entries {
				if err := printValue(e.Key, e.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}

	ttlCmd = &cobra.Command{
		Use:   "ttl [key]",
		Short: "Reads the remaining time to live of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := kv.GetTimeToLive(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("key=%s, ttl=%v\n", args[0], ttl)
			return nil
		},
	}

	refreshCmd = &cobra.Command{
		Use:   "refresh [key] [ttl]",
		Short: "Re-arms the TTL on a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := time.ParseDuration(args[1])
			if err != nil {
				return fmt.Errorf("ttl must be a duration: %w", err)
			}
			if err := kv.RefreshKey(cmd.Context(), args[0], ttl); err != nil {
				return err
			}
			fmt.Println("refreshed successfully")
			return nil
		},
	}

	lpushCmd = &cobra.Command{
		Use:   "lpush [key] [value]",
		Short: "Appends a value at the tail of a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kv.ListPush(cmd.Context(), args[0], decodeArg(args[1])); err != nil {
				return err
			}
			fmt.Println("pushed successfully")
			return nil
		},
	}

	lpopCmd = &cobra.Command{
		Use:   "lpop [key]",
		Short: "Removes and prints the tail element of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := kv.ListPop(cmd.Context(), args[0], true)
			if err != nil {
				return err
			}
			return printValue(args[0], v)
		},
	}

	lrangeCmd = &cobra.Command{
		Use:   "lrange [key] [start] [end]",
		Short: "Prints list elements between start and end inclusive (-1 = last)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("start must be a number: %w", err)
			}
			end, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("end must be a number: %w", err)
			}
			vs, err := kv.ListGet(cmd.Context(), args[0], start, end, true)
			if err != nil {
				return err
			}
			return printValue(args[0], vs)
		},
	}

	hsetCmd = &cobra.Command{
		Use:   "hset [key] [field] [value]",
		Short: "Sets a hash field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kv.HashSet(cmd.Context(), args[0], args[1], decodeArg(args[2])); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}

	hgetCmd = &cobra.Command{
		Use:   "hget [key] [field]",
		Short: "Reads a hash field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := kv.HashGet(cmd.Context(), args[0], args[1], true)
			if err != nil {
				return err
			}
			return printValue(args[0]+"."+args[1], v)
		},
	}

	hgetallCmd = &cobra.Command{
		Use:   "hgetall [key]",
		Short: "Reads every field of a hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := kv.HashGetAll(cmd.Context(), args[0], true)
			if err != nil {
				return err
			}
			return printValue(args[0], vs)
		},
	}

	hdelCmd = &cobra.Command{
		Use:   "hdel [key] [field]",
		Short: "Deletes a hash field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kv.HashDelete(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("deleted successfully")
			return nil
		},
	}

	getAllCmd = &cobra.Command{
		Use:   "getall",
		Short: "Snapshots every key in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := kv.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				if err := printValue(e.Key, e.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flushCmd = &cobra.Command{
		Use:   "flush [pattern]",
		Short: "Deletes every key matching a glob pattern (default *)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}
			if err := kv.DeleteAll(cmd.Context(), pattern); err != nil {
				return err
			}
			fmt.Println("flushed successfully")
			return nil
		},
	}
)

func init() {
	setCmd.Flags().DurationVar(&setTTL, "ttl", 0, "expiration to attach to the write (0 = none)")
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "print the raw encoded text instead of decoding")
}

// decodeArg accepts raw JSON and falls back to treating the argument as a
// plain string, so `set k 42` and `set k '{"a":1}'` both do what they look
// like.
func decodeArg(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

func printValue(key string, v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Printf("%s=%s\n", key, out)
	return nil
}

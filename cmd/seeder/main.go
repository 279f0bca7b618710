// Seeds a demo player with stats, a beatmap and one score so the v1
// surface returns data on a fresh local database. Development use only.
package main

import (
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	dsn := flag.String("dsn", "root@tcp(localhost:3306)/bancho?parseTime=true", "MySQL DSN")
	flag.Parse()

	db, err := sql.Open("mysql", *dsn)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer db.Close()

	now := time.Now().Unix()

	if _, err := db.Exec(
		`INSERT INTO users (id, name, safe_name, country, creation_time, latest_activity, api_key)
		 VALUES (1000, 'Demo Player', 'demo_player', 'jp', ?, ?, 'demo-api-key')
		 ON DUPLICATE KEY UPDATE latest_activity = VALUES(latest_activity)`,
		now, now); err != nil {
		log.Fatalf("seed user: %v", err)
	}

	for mode := 0; mode <= 3; mode++ {
		if _, err := db.Exec(
			`INSERT INTO stats (id, mode, tscore, rscore, pp, plays, playtime, acc,
			                    max_combo, xh_count, x_count, sh_count, s_count, a_count)
			 VALUES (1000, ?, 72727272, 42424242, 727.27, 100, 36000, 98.76, 1337, 1, 2, 3, 4, 5)
			 ON DUPLICATE KEY UPDATE plays = VALUES(plays)`, mode); err != nil {
			log.Fatalf("seed stats mode %d: %v", mode, err)
		}
	}

	if _, err := db.Exec(
		`INSERT INTO maps (md5, id, set_id, status)
		 VALUES ('d41d8cd98f00b204e9800998ecf8427e', 123, 45, 2)
		 ON DUPLICATE KEY UPDATE status = VALUES(status)`); err != nil {
		log.Fatalf("seed beatmap: %v", err)
	}

	if _, err := db.Exec(
		`INSERT INTO scores (id, map_md5, userid, score, pp, acc, max_combo, mods,
		                     n300, n100, n50, nmiss, ngeki, nkatu, grade, status, mode,
		                     play_time, time_elapsed, perfect, online_checksum)
		 VALUES (9001, 'd41d8cd98f00b204e9800998ecf8427e', 1000, 123456, 321.5, 99.1, 500, 0,
		         300, 10, 2, 0, 50, 5, 'S', 2, 0, NOW(), 95000, 0, 'abc123')
		 ON DUPLICATE KEY UPDATE score = VALUES(score)`); err != nil {
		log.Fatalf("seed score: %v", err)
	}

	log.Println("seeded demo player 1000 with one score on beatmap 123")
}

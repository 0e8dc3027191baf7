package roadnet

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadFile 从本地JSON文件读取地图数据
func LoadFile(path string) (*MapData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read map file %s", path)
	}
	data := &MapData{}
	if err := json.Unmarshal(b, data); err != nil {
		return nil, errors.Wrapf(err, "parse map file %s", path)
	}
	return data, nil
}

// mongo中每条记录的外层结构
type mongoDoc[T any] struct {
	Class string `bson:"class"`
	Data  T      `bson:"data"`
}

func findAll[T any](ctx context.Context, c *mongo.Collection, class string) ([]T, error) {
	cur, err := c.Find(ctx, bson.M{"class": class})
	if err != nil {
		return nil, errors.Wrapf(err, "find %s documents", class)
	}
	defer cur.Close(ctx)
	results := make([]T, 0)
	for cur.Next(ctx) {
		doc := mongoDoc[T]{}
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrapf(err, "decode %s document", class)
		}
		results = append(results, doc.Data)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate %s documents", class)
	}
	return results, nil
}

// LoadMongo 从mongo集合读取地图数据（{class, data}文档）
func LoadMongo(ctx context.Context, uri, db, coll string) (*MapData, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect mongo")
	}
	defer client.Disconnect(context.Background())
	c := client.Database(db).Collection(coll)

	data := &MapData{}
	if data.Roads, err = findAll[*RoadData](ctx, c, "road"); err != nil {
		return nil, err
	}
	if data.Lanes, err = findAll[*LaneData](ctx, c, "lane"); err != nil {
		return nil, err
	}
	log.Infof("loaded %d roads and %d lanes from %s.%s", len(data.Roads), len(data.Lanes), db, coll)
	return data, nil
}

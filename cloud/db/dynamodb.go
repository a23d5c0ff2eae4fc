// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoDBDatabase struct {
	svc       *dynamodb.DynamoDB
	db        *dynamo.DB
	mapsTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, stage string) (*DynamoDBDatabase, error) {
	ddb := &DynamoDBDatabase{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.mapsTable = ddb.db.Table("tilegen-" + stage + "-maps")
	return ddb, nil
}

// PutMap creates or replaces a map.
func (ddb *DynamoDBDatabase) PutMap(m Map) error {
	return ddb.mapsTable.Put(m).Run()
}

func (ddb *DynamoDBDatabase) ReadMap(name string) (m Map, err error) {
	err = ddb.mapsTable.Get("name", name).One(&m)
	if err == dynamo.ErrNotFound {
		err = ErrNotFound
	}
	return
}

func (ddb *DynamoDBDatabase) ReadMaps() (maps []Map, err error) {
	query := ddb.mapsTable.Scan().Iter()

	for {
		var m Map
		ok := query.Next(&m)
		if !ok {
			err = query.Err()
			return
		}
		maps = append(maps, m)
	}
}

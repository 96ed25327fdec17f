package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"vitrine_back_end/internal/catalog"
	"vitrine_back_end/internal/database"
)

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexSnapshot indexe un snapshot produit assemblé dans Elasticsearch.
// Appelé après chaque assemblage réussi, en goroutine : l'indexation
// ne bloque jamais la réponse.
func IndexSnapshot(s *catalog.ProductSnapshot) {
	if database.ElasticClient == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", s.Identity.Name)
		return
	}

	data, _ := json.Marshal(s)
	req := esapi.IndexRequest{
		Index:      "product_snapshots",
		DocumentID: s.Identity.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.ElasticClient)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", s.Identity.Name, res.String())
	} else {
		log.Printf("✅ Snapshot indexé dans Elasticsearch: %s", s.Identity.Name)
	}
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// SearchSnapshots recherche des snapshots par nom, description SEO ou tags
func SearchSnapshots(query string) ([]map[string]interface{}, error) {
	if database.ElasticClient == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"identity.name", "seo.description", "categorization.tags"},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{"product_snapshots"},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.ElasticClient)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("réponse Elastic invalide (pas de hits)")
	}

	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("aucun résultat trouvé")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}

	return results, nil
}
